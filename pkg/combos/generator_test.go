package combos

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/arthur-debert/combogen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConcreteScenario(t *testing.T) {
	blocks, count, err := Generate([]int{1, 3}, []string{"1", "2"}, "X={t1},Y={t3}")
	require.NoError(t, err)

	assert.Equal(t, 4, count)
	assert.Equal(t, []string{"X=1,Y=1", "X=1,Y=2", "X=2,Y=1", "X=2,Y=2"}, blocks)
}

func TestGenerateCountIsKPowN(t *testing.T) {
	tests := []struct {
		positions []int
		values    []string
	}{
		{[]int{1}, []string{"1"}},
		{[]int{1}, []string{"1", "2", "3"}},
		{[]int{1, 2}, []string{"a", "b"}},
		{[]int{1, 3, 6, 7}, []string{"1", "2", "3"}},
		{[]int{2, 4, 5}, []string{"0", "1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d^%d", len(tt.values), len(tt.positions)), func(t *testing.T) {
			var parts []string
			for _, p := range tt.positions {
				parts = append(parts, fmt.Sprintf("p%d={%s}", p, Token(DefaultPrefix, p)))
			}
			template := strings.Join(parts, ";")

			blocks, count, err := Generate(tt.positions, tt.values, template)
			require.NoError(t, err)

			want := int(math.Pow(float64(len(tt.values)), float64(len(tt.positions))))
			assert.Equal(t, want, count)
			assert.Len(t, blocks, want)

			seen := make(map[string]bool)
			for _, b := range blocks {
				assert.False(t, seen[b], "block %q repeated", b)
				seen[b] = true
				for _, p := range tt.positions {
					assert.NotContains(t, b, "{"+Token(DefaultPrefix, p)+"}")
				}
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first, _, err := Generate([]int{1, 3, 6, 7}, []string{"1", "2", "3"}, "{t1}0{t3}00{t6}{t7}")
	require.NoError(t, err)
	second, _, err := Generate([]int{1, 3, 6, 7}, []string{"1", "2", "3"}, "{t1}0{t3}00{t6}{t7}")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "1010011", first[0])
	assert.Equal(t, "1010012", first[1])
	assert.Equal(t, "3030033", first[len(first)-1])
}

func TestEachOrderRightmostFastest(t *testing.T) {
	g, err := New(Options{
		Positions: []int{1, 3},
		Values:    []string{"1", "2"},
		Template:  "{t1}{t3}",
	})
	require.NoError(t, err)

	var got []map[string]string
	var indexes []int
	require.NoError(t, g.Each(func(c Combination) error {
		got = append(got, c.Mapping())
		indexes = append(indexes, c.Index)
		return nil
	}))

	assert.Equal(t, []int{0, 1, 2, 3}, indexes)
	assert.Equal(t, map[string]string{"t1": "1", "t3": "1"}, got[0])
	assert.Equal(t, map[string]string{"t1": "1", "t3": "2"}, got[1])
	assert.Equal(t, map[string]string{"t1": "2", "t3": "1"}, got[2])
	assert.Equal(t, map[string]string{"t1": "2", "t3": "2"}, got[3])
}

func TestEachStopsOnError(t *testing.T) {
	g, err := New(Options{Positions: []int{1}, Values: []string{"a", "b", "c"}, Template: "{t1}"})
	require.NoError(t, err)

	stop := fmt.Errorf("stop")
	calls := 0
	err = g.Each(func(c Combination) error {
		calls++
		if c.Index == 1 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, calls)
}

func TestCustomPrefix(t *testing.T) {
	g, err := New(Options{
		Prefix:    "slot",
		Positions: []int{2},
		Values:    []string{"x", "y"},
		Template:  "v={slot2}",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"slot2"}, g.Tokens())
	blocks, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, []string{"v=x", "v=y"}, blocks)
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.ErrorCode
	}{
		{
			name: "empty positions",
			opts: Options{Values: []string{"1"}, Template: "x"},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "empty values",
			opts: Options{Positions: []int{1}, Template: "{t1}"},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "negative position",
			opts: Options{Positions: []int{-1}, Values: []string{"1"}, Template: "{t-1}"},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "zero position",
			opts: Options{Positions: []int{0, 1}, Values: []string{"1"}, Template: "{t0}{t1}"},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "duplicate position",
			opts: Options{Positions: []int{1, 1}, Values: []string{"1"}, Template: "{t1}"},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "position missing from template",
			opts: Options{Positions: []int{1, 2}, Values: []string{"1"}, Template: "{t1}"},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "unresolved placeholder",
			opts: Options{Positions: []int{1}, Values: []string{"1"}, Template: "{t1} {t5}"},
			code: errors.ErrTemplateUnresolved,
		},
		{
			name: "bad syntax",
			opts: Options{Positions: []int{1}, Values: []string{"1"}, Template: "{t1"},
			code: errors.ErrTemplateSyntax,
		},
		{
			name: "over the limit",
			opts: Options{
				Positions:       []int{1, 2, 3},
				Values:          []string{"1", "2", "3"},
				Template:        "{t1}{t2}{t3}",
				MaxCombinations: 26,
			},
			code: errors.ErrTooManyCombinations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.opts)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), err.Error())
			assert.True(t, errors.IsConfigError(err))
		})
	}
}

func TestCount(t *testing.T) {
	n, ok := Count(3, 4)
	assert.True(t, ok)
	assert.Equal(t, 81, n)

	n, ok = Count(5, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = Count(10, 40)
	assert.False(t, ok)
}

func TestGeneratorCopiesInputs(t *testing.T) {
	positions := []int{1}
	values := []string{"a", "b"}
	g, err := New(Options{Positions: positions, Values: values, Template: "{t1}"})
	require.NoError(t, err)

	values[0] = "z"
	positions[0] = 9

	assert.Equal(t, []string{"a", "b"}, g.Values())
	assert.Equal(t, []int{1}, g.Positions())
}
