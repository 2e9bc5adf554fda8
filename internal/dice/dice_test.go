package dice

import (
	"errors"
	"math"
	"testing"

	"github.com/KirkDiggler/montecarlo/internal/common/random"
	"github.com/KirkDiggler/montecarlo/internal/common/random/mocks"
	"github.com/KirkDiggler/montecarlo/internal/common/simerr"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DieTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSource *mocks.MockSource

	sixSided *Die[int]
}

func (s *DieTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSource = mocks.NewMockSource(s.mockCtrl)

	die, err := New([]int{1, 2, 3, 4, 5, 6}, &Config{Source: s.mockSource})
	s.Require().NoError(err)
	s.sixSided = die
}

func TestDieTestSuite(t *testing.T) {
	suite.Run(t, new(DieTestSuite))
}

func (s *DieTestSuite) TestNewStartsWithUnitWeights() {
	state := s.sixSided.State()

	s.Require().Len(state, 6)
	for i, row := range state {
		s.Equal(i+1, row.Face)
		s.Equal(1.0, row.Weight)
	}
}

func (s *DieTestSuite) TestNewRejectsBadFaces() {
	tests := []struct {
		name  string
		faces []int
	}{
		{name: "duplicates", faces: []int{1, 2, 2}},
		{name: "empty", faces: []int{}},
		{name: "nil", faces: nil},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			die, err := New(tt.faces, nil)
			s.Nil(die)
			s.ErrorIs(err, simerr.ErrInvalidFaces)
		})
	}
}

func (s *DieTestSuite) TestNewRejectsNaNFace() {
	_, err := New([]float64{1, math.NaN()}, nil)
	s.ErrorIs(err, simerr.ErrInvalidFaces)
}

func (s *DieTestSuite) TestNewCopiesFaces() {
	faces := []string{"H", "T"}
	die, err := New(faces, nil)
	s.Require().NoError(err)

	faces[0] = "X"
	s.Equal([]string{"H", "T"}, die.Faces())
}

func (s *DieTestSuite) TestSetWeight() {
	s.Require().NoError(s.sixSided.SetWeight(6, 2.5))

	state := s.sixSided.State()
	for _, row := range state {
		if row.Face == 6 {
			s.Equal(2.5, row.Weight)
			continue
		}
		s.Equal(1.0, row.Weight, "face %d", row.Face)
	}

	w, err := s.sixSided.Weight(6)
	s.Require().NoError(err)
	s.Equal(2.5, w)
}

func (s *DieTestSuite) TestSetWeightZeroAllowed() {
	s.NoError(s.sixSided.SetWeight(3, 0))
}

func (s *DieTestSuite) TestSetWeightErrors() {
	tests := []struct {
		name    string
		face    int
		weight  float64
		wantErr error
	}{
		{name: "unknown face", face: 7, weight: 1, wantErr: simerr.ErrUnknownFace},
		{name: "negative", face: 1, weight: -0.5, wantErr: simerr.ErrInvalidWeight},
		{name: "nan", face: 1, weight: math.NaN(), wantErr: simerr.ErrInvalidWeight},
		{name: "inf", face: 1, weight: math.Inf(1), wantErr: simerr.ErrInvalidWeight},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.sixSided.SetWeight(tt.face, tt.weight)
			s.True(errors.Is(err, tt.wantErr), "got %v", err)

			// nothing changed
			for _, row := range s.sixSided.State() {
				s.Equal(1.0, row.Weight)
			}
		})
	}
}

func (s *DieTestSuite) TestWeightUnknownFace() {
	_, err := s.sixSided.Weight(0)
	s.ErrorIs(err, simerr.ErrUnknownFace)
}

func (s *DieTestSuite) TestRollRejectsNonPositive() {
	for _, times := range []int{0, -1} {
		out, err := s.sixSided.Roll(times)
		s.Nil(out)
		s.ErrorIs(err, simerr.ErrInvalidArgument)
	}
}

func (s *DieTestSuite) TestRollFollowsCumulativeWeights() {
	die, err := New([]int{1, 2, 3}, &Config{Source: s.mockSource})
	s.Require().NoError(err)
	s.Require().NoError(die.SetWeight(3, 2))

	// scaled cumulative weights are 0.5, 1, 2
	gomock.InOrder(
		s.mockSource.EXPECT().Float64().Return(0.1),
		s.mockSource.EXPECT().Float64().Return(0.3),
		s.mockSource.EXPECT().Float64().Return(0.9),
		s.mockSource.EXPECT().Float64().Return(0.25),
	)

	out, err := die.Roll(4)
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 3, 2}, out)
}

func (s *DieTestSuite) TestRollSkipsZeroWeightFaces() {
	die, err := New([]string{"a", "b", "c"}, &Config{Source: s.mockSource})
	s.Require().NoError(err)
	s.Require().NoError(die.SetWeight("a", 0))
	s.Require().NoError(die.SetWeight("b", 0))

	s.mockSource.EXPECT().Float64().Return(0.0)
	s.mockSource.EXPECT().Float64().Return(0.5)

	out, err := die.Roll(2)
	s.Require().NoError(err)
	s.Equal([]string{"c", "c"}, out)
}

func (s *DieTestSuite) TestRollSeesWeightChanges() {
	die, err := New([]int{1, 2}, &Config{Source: s.mockSource})
	s.Require().NoError(err)

	s.mockSource.EXPECT().Float64().Return(0.4).Times(2)

	first, err := die.RollOnce()
	s.Require().NoError(err)
	s.Equal(1, first)

	// scaled weights 0.25 and 1; 0.4 * 1.25 lands past face 1
	s.Require().NoError(die.SetWeight(2, 4))
	second, err := die.RollOnce()
	s.Require().NoError(err)
	s.Equal(2, second)
}

func (s *DieTestSuite) TestRollAtTotalTakesLastWeightedFace() {
	die, err := New([]string{"a", "b", "c"}, &Config{Source: s.mockSource})
	s.Require().NoError(err)
	s.Require().NoError(die.SetWeight("c", 0))

	// a draw of 1.0 puts the target exactly on the total weight
	s.mockSource.EXPECT().Float64().Return(1.0)

	out, err := die.Roll(1)
	s.Require().NoError(err)
	s.Equal([]string{"b"}, out)
}

func (s *DieTestSuite) TestRollHugeWeightsKeepProportions() {
	tests := []struct {
		name     string
		one, two float64
		wantOne  float64
	}{
		{name: "equal", one: 1e308, two: 1e308, wantOne: 0.5},
		{name: "two to one", one: 1.7e308, two: 0.85e308, wantOne: 2.0 / 3.0},
		{name: "max float", one: math.MaxFloat64, two: math.MaxFloat64, wantOne: 0.5},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			const n = 20000
			die, err := New([]int{1, 2}, &Config{Source: random.NewSeeded(17)})
			s.Require().NoError(err)
			s.Require().NoError(die.SetWeight(1, tt.one))
			s.Require().NoError(die.SetWeight(2, tt.two))

			out, err := die.Roll(n)
			s.Require().NoError(err)

			ones := 0
			for _, v := range out {
				if v == 1 {
					ones++
				}
			}
			s.InDelta(tt.wantOne, float64(ones)/n, 0.02)
		})
	}
}

func (s *DieTestSuite) TestRollAllZeroWeights() {
	s.Require().NoError(s.sixSided.SetWeight(1, 0))
	for face := 2; face <= 6; face++ {
		s.Require().NoError(s.sixSided.SetWeight(face, 0))
	}

	_, err := s.sixSided.Roll(3)
	s.ErrorIs(err, simerr.ErrInvalidWeight)
}

func (s *DieTestSuite) TestSingleFaceIgnoresWeight() {
	die, err := New([]int{1}, &Config{Source: s.mockSource})
	s.Require().NoError(err)
	s.Require().NoError(die.SetWeight(1, 0))

	// no randomness consumed
	out, err := die.Roll(10)
	s.Require().NoError(err)
	s.Len(out, 10)
	for _, v := range out {
		s.Equal(1, v)
	}
}

func (s *DieTestSuite) TestRollLengthAndMembership() {
	die, err := New([]int{1, 2, 3, 4, 5, 6}, &Config{Seed: 7})
	s.Require().NoError(err)

	out, err := die.Roll(500)
	s.Require().NoError(err)
	s.Len(out, 500)
	for _, v := range out {
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 6)
	}
}

func (s *DieTestSuite) TestRollFrequencyApproximatesWeights() {
	const n = 100000
	die, err := New([]string{"H", "T"}, &Config{Source: random.NewSeeded(42)})
	s.Require().NoError(err)
	s.Require().NoError(die.SetWeight("T", 3))

	out, err := die.Roll(n)
	s.Require().NoError(err)

	tails := 0
	for _, v := range out {
		if v == "T" {
			tails++
		}
	}
	s.InDelta(0.75, float64(tails)/n, 0.01)
}

func (s *DieTestSuite) TestSeededDiceRepeat() {
	a, err := New([]int{1, 2, 3, 4}, &Config{Seed: 99})
	s.Require().NoError(err)
	b, err := New([]int{1, 2, 3, 4}, &Config{Seed: 99})
	s.Require().NoError(err)

	outA, err := a.Roll(50)
	s.Require().NoError(err)
	outB, err := b.Roll(50)
	s.Require().NoError(err)
	s.Equal(outA, outB)
}
