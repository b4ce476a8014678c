// Package anchor evaluates anchor-positioning declarations.
//
// It understands the subset of the anchor syntax the declarative strategy
// writes: inset values of the form "Npx", "anchor([--name] side)" and
// "calc(anchor(...) ± Npx)", plus "anchor-center" self-alignment. Place
// lays out one declaration block; Resolve walks a fallback chain and picks
// the first block that fits its containing block.
package anchor
