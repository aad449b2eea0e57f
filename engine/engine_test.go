// SPDX-License-Identifier: MIT

package engine_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcgpredict/affine"
	"github.com/katalvlaran/lcgpredict/engine"
	"github.com/katalvlaran/lcgpredict/width"
)

// Reference outputs for seed 1 (OEIS A096553, A221556, A096550, A384331,
// A382305 without the leading 1, and musl rand).
var (
	krcWant = []uint32{
		1103527590, 377401575, 662824084, 1147902781, 2035015474,
		368800899, 1508029952, 486256185, 1062517886, 267834847,
	}
	minstdWant = []uint32{
		48271, 182605794, 1291394886, 1914720637, 2078669041,
		407355683, 1105902161, 854716505, 564586691, 1596680831,
	}
	minstd0Want = []uint32{
		16807, 282475249, 1622650073, 984943658, 1144108930,
		470211272, 101027544, 1457850878, 1458777923, 2007237709,
	}
	msvcWant = []uint32{
		2745024, 1210316419, 415139642, 1736732949, 1256316804,
		1030492215, 752224798, 1924036713, 1766988168, 1603301931,
	}
	rand48Want = []uint64{
		25214903928, 206026503483683, 245470556921330, 105707381795861, 223576932655868,
		102497929776471, 87262199322646, 266094224901481, 44061996164032, 147838658590923,
	}
	muslWant = []uint64{
		6364136223846793006, 13885033948157127959, 14678909342070756876, 14340359694176818205, 3490389784639564826,
		2377159206977889939, 11136134660641191128, 5776246781640716793, 12360490266823512006, 7783159857423531983,
	}
)

func krc() *engine.Engine[uint32]     { return engine.FromParams[uint32](1103515245, 12345, 2147483648) }
func minstd() *engine.Engine[uint32]  { return engine.FromParams[uint32](48271, 0, 2147483647) }
func minstd0() *engine.Engine[uint32] { return engine.FromParams[uint32](16807, 0, 2147483647) }
func msvc() *engine.Engine[uint32]    { return engine.FromParams[uint32](214013, 2531011, 2147483648) }
func rand48() *engine.Engine[uint64] {
	return engine.FromParams[uint64](25214903917, 11, 281474976710656)
}
func musl() *engine.Engine[uint64] { return engine.FromParams[uint64](6364136223846793005, 1, 0) }

// checkReference verifies both simulation and prediction against want.
func checkReference[T width.Unsigned](t *testing.T, e *engine.Engine[T], want []T) {
	t.Helper()
	before := e.Clone()
	assert.Equal(t, want, e.Predict(len(want)), "prediction\n%s", spew.Sdump(e))
	assert.Equal(t, want, e.Simulate(len(want)), "simulation\n%s", spew.Sdump(e))
	require.Truef(t, e.Equal(before), "Predict and Simulate must not mutate the engine\n%s", spew.Sdump(e))

	for i, w := range want {
		require.Equalf(t, w, e.Step(), "step %d\n%s", i+1, spew.Sdump(e))
	}
}

// checkAgreement compares prediction with simulation for steps 1..k.
func checkAgreement[T width.Unsigned](t *testing.T, e *engine.Engine[T], k int) {
	t.Helper()
	sim := e.Simulate(k)
	pred := e.Predict(k)
	for i := range sim {
		if sim[i] != pred[i] {
			t.Fatalf("step %d: simulated %d, predicted %d\n%s", i+1, sim[i], pred[i], spew.Sdump(e))
		}
	}
}

// TestReferenceTables checks the first ten outputs of well-known generators.
func TestReferenceTables(t *testing.T) {
	t.Run("krc", func(t *testing.T) { checkReference(t, krc(), krcWant) })
	t.Run("minstd", func(t *testing.T) { checkReference(t, minstd(), minstdWant) })
	t.Run("minstd0", func(t *testing.T) { checkReference(t, minstd0(), minstd0Want) })
	t.Run("msvc", func(t *testing.T) { checkReference(t, msvc(), msvcWant) })
	t.Run("rand48", func(t *testing.T) { checkReference(t, rand48(), rand48Want) })
	t.Run("musl", func(t *testing.T) { checkReference(t, musl(), muslWant) })
}

// TestPredictionMatchesSimulation covers steps 1..1000 for every generator.
func TestPredictionMatchesSimulation(t *testing.T) {
	const k = 1000
	t.Run("krc", func(t *testing.T) { checkAgreement(t, krc(), k) })
	t.Run("minstd", func(t *testing.T) { checkAgreement(t, minstd(), k) })
	t.Run("minstd0", func(t *testing.T) { checkAgreement(t, minstd0(), k) })
	t.Run("msvc", func(t *testing.T) { checkAgreement(t, msvc(), k) })
	t.Run("rand48", func(t *testing.T) { checkAgreement(t, rand48(), k) })
	t.Run("musl", func(t *testing.T) { checkAgreement(t, musl(), k) })
	t.Run("uint8", func(t *testing.T) { checkAgreement(t, engine.FromParams[uint8](5, 3, 0), k) })
	t.Run("uint16", func(t *testing.T) {
		checkAgreement(t, engine.FromParams[uint16](75, 74, 0, engine.WithSeed[uint16](7)), k)
	})
}

// TestValueAfterNSteps_Checkpoints pins the 10000th minstd outputs.
func TestValueAfterNSteps_Checkpoints(t *testing.T) {
	assert.Equal(t, uint32(399268537), minstd().ValueAfterNSteps(10000))
	assert.Equal(t, uint32(1043618065), minstd0().ValueAfterNSteps(10000))

	e := minstd()
	assert.Equal(t, e.State(), e.ValueAfterNSteps(0))
	assert.Equal(t, uint32(engine.DefaultSeed), e.State(), "prediction leaves the state alone")
}

// TestDiscard jumps and then keeps stepping from the new state.
func TestDiscard(t *testing.T) {
	e := krc()
	e.Discard(4)
	assert.Equal(t, krcWant[3], e.State())
	assert.Equal(t, krcWant[4], e.Step())

	e.Discard(0)
	assert.Equal(t, krcWant[4], e.State())
}

// TestRetreat undoes Discard when the multiplier is invertible.
func TestRetreat(t *testing.T) {
	for name, e := range map[string]*engine.Engine[uint64]{
		"rand48": rand48(),
		"musl":   musl(),
	} {
		t.Run(name, func(t *testing.T) {
			orig := e.Clone()
			e.Discard(123456789)
			require.False(t, e.Equal(orig))
			require.True(t, e.Retreat(123456789))
			assert.Truef(t, e.Equal(orig), "%s", spew.Sdump(e, orig))
		})
	}

	e := minstd()
	for i := 0; i < 5; i++ {
		e.Step()
	}
	prev, ok := e.ValueBeforeNSteps(1)
	require.True(t, ok)
	assert.Equal(t, minstdWant[3], prev)
	prev, ok = e.ValueBeforeNSteps(5)
	require.True(t, ok)
	assert.Equal(t, uint32(1), prev)
}

// TestRetreat_NotInvertible leaves the state untouched.
func TestRetreat_NotInvertible(t *testing.T) {
	e := engine.FromParams[uint32](6, 1, 12, engine.WithSeed[uint32](5))
	_, ok := e.ValueBeforeNSteps(1)
	assert.False(t, ok)
	assert.False(t, e.Retreat(3))
	assert.Equal(t, uint32(5), e.State())
}

// TestSeedNormalization reduces seeds modulo M.
func TestSeedNormalization(t *testing.T) {
	e := engine.FromParams[uint32](48271, 0, 2147483647, engine.WithSeed[uint32](2147483648))
	assert.Equal(t, uint32(1), e.State())

	e.SetState(2147483647 + 5)
	assert.Equal(t, uint32(5), e.State())

	assert.Equal(t, uint64(0), engine.New(affine.New[uint64](3, 0, 1)).State(), "everything is 0 modulo 1")
	assert.Equal(t, uint64(engine.DefaultSeed), musl().State())
}

// TestSetters renormalize parameters and state.
func TestSetters(t *testing.T) {
	e := engine.FromParams[uint32](10, 20, 0, engine.WithSeed[uint32](100))
	e.SetM(7)
	assert.Equal(t, uint32(3), e.A())
	assert.Equal(t, uint32(6), e.C())
	assert.Equal(t, uint32(7), e.M())
	assert.Equal(t, uint32(2), e.State())

	e.SetA(9)
	e.SetC(15)
	assert.Equal(t, uint32(2), e.A())
	assert.Equal(t, uint32(1), e.C())

	e.SetAffine(affine.New[uint32](1, 1, 2))
	assert.Equal(t, uint32(0), e.State())
	assert.True(t, e.Affine().Equal(affine.New[uint32](1, 1, 2)))
	assert.Equal(t, uint32(1), e.Step())
}

// TestMinMax forwards to the transform.
func TestMinMax(t *testing.T) {
	assert.Equal(t, uint32(1), minstd().Min())
	assert.Equal(t, uint32(2147483646), minstd().Max())
	assert.Equal(t, uint64(0), musl().Min())
	assert.Equal(t, ^uint64(0), musl().Max())
}

// TestClone yields independent engines.
func TestClone(t *testing.T) {
	e := msvc()
	cp := e.Clone()
	require.True(t, e.Equal(cp))

	cp.Step()
	assert.False(t, e.Equal(cp))
	assert.Equal(t, uint32(engine.DefaultSeed), e.State())

	var nilEngine *engine.Engine[uint32]
	assert.True(t, nilEngine.Equal(nil))
	assert.False(t, nilEngine.Equal(e))
}

// TestSimulatePredict_Empty returns nil for non-positive counts.
func TestSimulatePredict_Empty(t *testing.T) {
	e := krc()
	assert.Nil(t, e.Simulate(0))
	assert.Nil(t, e.Predict(-1))
}

// TestString includes the transform and the state.
func TestString(t *testing.T) {
	e := engine.FromParams[uint32](5, 3, 7, engine.WithSeed[uint32](4))
	assert.Equal(t, "x -> (5*x + 3) mod 7 state=4", e.String())
}
