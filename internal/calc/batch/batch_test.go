package batch

import (
	"context"
	"testing"

	"github.com/cpmech/gosl/chk"

	"Girder/internal/calc/girder"
)

func Test_batch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch01. order kept, bad items isolated")

	good := girder.Input{
		SpanMM:          30000,
		NumGirders:      2,
		GirderSpacingMM: 3000,
		SteelGrade:      "E250A",
		LoadClass:       "CLASS_A",
		WebThicknessMM:  20,
	}
	bad := good
	bad.SpanMM = 0

	out := Calculate(context.Background(), Input{Items: []girder.Input{good, bad, good}})
	chk.IntAssert(out.Count, 3)
	chk.IntAssert(len(out.Results), 3)

	chk.IntAssert(out.Results[0].Index, 0)
	chk.IntAssert(out.Results[1].Index, 1)
	chk.IntAssert(out.Results[2].Index, 2)

	if out.Results[0].Result == nil || out.Results[2].Result == nil {
		tst.Fatalf("valid items must produce results")
	}
	if out.Results[1].Error == "" || out.Results[1].Result != nil {
		tst.Fatalf("invalid item must carry only an error")
	}
	chk.IntAssert(out.Passed, 2)
}
