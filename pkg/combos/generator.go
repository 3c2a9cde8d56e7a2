package combos

import (
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/combogen/pkg/errors"
	"github.com/arthur-debert/combogen/pkg/logging"
)

const (
	// DefaultPrefix is prepended to a position number to form its token.
	DefaultPrefix = "t"

	// DefaultMaxCombinations caps the product size when Options leaves it unset.
	DefaultMaxCombinations = 1_000_000
)

// Options configures a Generator
type Options struct {
	Prefix          string
	Positions       []int
	Values          []string
	Template        string
	MaxCombinations int
}

// Combination assigns one value to each position.
type Combination struct {
	Index  int
	Tokens []string
	Values []string
}

// Mapping returns the token -> value assignment for this combination.
func (c Combination) Mapping() map[string]string {
	m := make(map[string]string, len(c.Tokens))
	for i, tok := range c.Tokens {
		m[tok] = c.Values[i]
	}
	return m
}

// Generator enumerates the Cartesian product of values over positions and
// renders the template for each combination.
type Generator struct {
	positions []int
	values    []string
	tokens    []string
	tmpl      *Template
	count     int
}

// Token builds the placeholder token for a position.
func Token(prefix string, position int) string {
	return prefix + strconv.Itoa(position)
}

// Count returns k^n, or false if the result overflows an int.
func Count(k, n int) (int, bool) {
	if k == 0 {
		if n == 0 {
			return 1, true
		}
		return 0, true
	}
	total := 1
	for i := 0; i < n; i++ {
		if total > math.MaxInt/k {
			return 0, false
		}
		total *= k
	}
	return total, true
}

// New validates opts and returns a Generator. All configuration and
// template errors surface here, before anything is rendered.
func New(opts Options) (*Generator, error) {
	if len(opts.Positions) == 0 {
		return nil, errors.New(errors.ErrConfigInvalid, "no placeholder positions configured")
	}
	if len(opts.Values) == 0 {
		return nil, errors.New(errors.ErrConfigInvalid, "no placeholder values configured")
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	tokens := make([]string, len(opts.Positions))
	byToken := make(map[string]bool, len(opts.Positions))
	for i, pos := range opts.Positions {
		if pos <= 0 {
			return nil, errors.Newf(errors.ErrConfigInvalid, "position %d is not a positive number", pos)
		}
		tok := Token(prefix, pos)
		if byToken[tok] {
			return nil, errors.Newf(errors.ErrConfigInvalid, "position %d is listed more than once", pos)
		}
		byToken[tok] = true
		tokens[i] = tok
	}

	tmpl, err := ParseTemplate(opts.Template)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	for _, tok := range tmpl.Tokens() {
		if !byToken[tok] {
			return nil, errors.Newf(errors.ErrTemplateUnresolved,
				"template references {%s} which is not a configured position", tok).
				WithDetail("token", tok)
		}
		used[tok] = true
	}
	var missing []string
	for _, tok := range tokens {
		if !used[tok] {
			missing = append(missing, "{"+tok+"}")
		}
	}
	if len(missing) > 0 {
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"template has no placeholder for %s", strings.Join(missing, ", ")).
			WithDetail("missing", missing)
	}

	limit := opts.MaxCombinations
	if limit <= 0 {
		limit = DefaultMaxCombinations
	}
	count, ok := Count(len(opts.Values), len(opts.Positions))
	if !ok || count > limit {
		return nil, errors.Newf(errors.ErrTooManyCombinations,
			"%d^%d combinations exceeds the limit of %d", len(opts.Values), len(opts.Positions), limit)
	}

	values := make([]string, len(opts.Values))
	copy(values, opts.Values)
	positions := make([]int, len(opts.Positions))
	copy(positions, opts.Positions)

	logger := logging.GetLogger("combos")
	logger.Debug().
		Ints("positions", positions).
		Strs("values", values).
		Int("combinations", count).
		Msg("generator ready")

	return &Generator{
		positions: positions,
		values:    values,
		tokens:    tokens,
		tmpl:      tmpl,
		count:     count,
	}, nil
}

// Count returns the number of combinations the generator yields.
func (g *Generator) Count() int {
	return g.count
}

// Tokens returns the placeholder token for each position, in position order.
func (g *Generator) Tokens() []string {
	out := make([]string, len(g.tokens))
	copy(out, g.tokens)
	return out
}

// Positions returns the configured positions.
func (g *Generator) Positions() []int {
	out := make([]int, len(g.positions))
	copy(out, g.positions)
	return out
}

// Values returns the configured value set.
func (g *Generator) Values() []string {
	out := make([]string, len(g.values))
	copy(out, g.values)
	return out
}

// Each calls fn for every combination in lexicographic order and stops at
// the first error fn returns.
func (g *Generator) Each(fn func(Combination) error) error {
	n := len(g.positions)
	idx := make([]int, n)

	for i := 0; i < g.count; i++ {
		vals := make([]string, n)
		for p, vi := range idx {
			vals[p] = g.values[vi]
		}
		if err := fn(Combination{Index: i, Tokens: g.tokens, Values: vals}); err != nil {
			return err
		}

		// odometer: bump the rightmost digit, carrying leftwards
		for p := n - 1; p >= 0; p-- {
			idx[p]++
			if idx[p] < len(g.values) {
				break
			}
			idx[p] = 0
		}
	}
	return nil
}

// Render substitutes one combination into the template.
func (g *Generator) Render(c Combination) (string, error) {
	return g.tmpl.Render(c.Mapping())
}

// Generate renders every combination, in order.
func (g *Generator) Generate() ([]string, error) {
	blocks := make([]string, 0, g.count)
	err := g.Each(func(c Combination) error {
		block, err := g.Render(c)
		if err != nil {
			return err
		}
		blocks = append(blocks, block)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// Generate is a shorthand for building a Generator with the default prefix
// and limit and rendering all blocks. It returns the blocks and their count.
func Generate(positions []int, values []string, template string) ([]string, int, error) {
	g, err := New(Options{
		Positions: positions,
		Values:    values,
		Template:  template,
	})
	if err != nil {
		return nil, 0, err
	}
	blocks, err := g.Generate()
	if err != nil {
		return nil, 0, err
	}
	return blocks, len(blocks), nil
}
