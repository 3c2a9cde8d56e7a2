// Package combos expands a text template into every combination of
// placeholder values.
//
// A template refers to placeholders with braces, {t1}, where the token is a
// fixed prefix followed by a position number. Doubled braces ({{ and }})
// produce literal braces. Given N positions and K values the generator
// yields K^N rendered blocks in lexicographic product order: the last
// position cycles fastest.
//
// Templates are validated once when a Generator is built; after that every
// render is guaranteed to succeed, so generation itself cannot fail halfway.
package combos
