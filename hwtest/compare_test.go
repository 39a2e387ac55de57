package hwtest_test

import (
	"testing"

	hw "github.com/rparrett/sim3bit"
	hl "github.com/rparrett/sim3bit/hwlib"
	"github.com/rparrett/sim3bit/hwtest"
)

func TestComparePart(t *testing.T) {
	or, err := hw.Chip("custom_or", hw.IO("a", "b"), hw.IO("out"),
		hl.Nand("a=a, b=a, out=notA"),
		hl.Nand("a=b, b=b, out=notB"),
		hl.Nand("a=notA, b=notB, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ComparePart(t, 4, hl.Or, or)
}
