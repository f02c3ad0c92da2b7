package combine

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_combine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combine01. fixed limit-state table")

	table := Combinations()
	chk.IntAssert(len(table), 5)
	chk.StrAssert(table[0].ID, "ULS_BASIC")
	chk.Float64(tst, "ULS gamma_dl", 1e-15, table[0].GammaDL, 1.35)
	chk.Float64(tst, "ULS gamma_ll", 1e-15, table[0].GammaLL, 1.50)
	chk.StrAssert(table[4].ID, "SLS_QUASI_PERMANENT")
	chk.Float64(tst, "QP gamma_ll", 1e-15, table[4].GammaLL, 0)
}

func Test_combine02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combine02. governing demand")

	e := Effects{DeadMomentKNM: 1000, DeadShearKN: 200, LiveMomentKNM: 800, LiveShearKN: 150}
	d := Governing(e, Combinations())

	// Both factors are maximal in ULS_BASIC, so it governs both effects.
	chk.Float64(tst, "M", 1e-9, d.MomentKNM, 1.35*1000+1.50*800)
	chk.StrAssert(d.MomentCombination, "ULS_BASIC")
	chk.Float64(tst, "V", 1e-9, d.ShearKN, 1.35*200+1.50*150)
	chk.StrAssert(d.ShearCombination, "ULS_BASIC")
}

func Test_combine03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combine03. moment and shear governed independently")

	// Dead-dominated moment, live-dominated shear: with a table whose
	// rows weight the sources oppositely, different rows must govern.
	table := []Combination{
		{ID: "DEAD_HEAVY", GammaDL: 2.0, GammaLL: 0.0},
		{ID: "LIVE_HEAVY", GammaDL: 0.0, GammaLL: 2.0},
	}
	e := Effects{DeadMomentKNM: 100, DeadShearKN: 10, LiveMomentKNM: 10, LiveShearKN: 100}
	d := Governing(e, table)

	chk.Float64(tst, "M", 1e-12, d.MomentKNM, 200)
	chk.StrAssert(d.MomentCombination, "DEAD_HEAVY")
	chk.Float64(tst, "V", 1e-12, d.ShearKN, 200)
	chk.StrAssert(d.ShearCombination, "LIVE_HEAVY")
}
