package bot

import (
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Source is the randomness behind the random tier. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // it's ok
}

// DefaultSource draws from the runtime's shared generator.
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a reproducible source.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed)) //nolint: gosec // it's ok
}

// Random plays a uniformly random empty cell.
type Random struct {
	mu     sync.Mutex
	source Source
}

func NewRandom(source Source) *Random {
	if source == nil {
		source = DefaultSource()
	}

	return &Random{source: source}
}

func (that *Random) SelectMove(board entity.Board, _ entity.Mark) (int, error) {
	cells, err := availableCells(board)
	if err != nil {
		return -1, err
	}

	that.mu.Lock()
	chosen := cells[that.source.IntN(len(cells))]
	that.mu.Unlock()

	return chosen, nil
}
