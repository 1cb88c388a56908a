package tracer

import (
	"math"
	"reflect"
	"testing"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/classify"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
)

func Test_accumulator_result(t *testing.T) {
	t.Parallel()

	acc := newAccumulator()
	adds := []struct {
		key byte
		res classify.Result
	}{
		{key: 0x0c, res: classify.Result{Kind: model.KindNormal, Amount: 100}},
		{key: 0x0e, res: classify.Result{Kind: model.KindNormal, Amount: 300}},
		{key: 0x0d, res: classify.Result{Kind: model.KindNormal, Amount: 100}},
		{key: 0x0f, res: classify.Result{Kind: model.KindNormal, Confidential: true}},
		// Kind stays as first seen.
		{key: 0x0c, res: classify.Result{Kind: model.KindReserved, Confidential: true}},
	}
	for _, a := range adds {
		if err := acc.add(key(a.key), addrOf(a.key), a.res); err != nil {
			t.Fatalf("add() error = %v", err)
		}
	}

	got := acc.result()
	want := roundResult{
		report: model.RoundReport{
			ReceiverCnt:     4,
			TotalCnt:        5,
			ConfidentialCnt: 2,
			Entries: []model.Receiver{
				{Address: addrOf(0x0e), Kind: model.KindNormal, TotalCnt: 1, NonConfidentialAmount: 300},
				{Address: addrOf(0x0c), Kind: model.KindNormal, TotalCnt: 2, ConfidentialCnt: 1, NonConfidentialAmount: 100},
				{Address: addrOf(0x0d), Kind: model.KindNormal, TotalCnt: 1, NonConfidentialAmount: 100},
				{Address: addrOf(0x0f), Kind: model.KindNormal, TotalCnt: 1, ConfidentialCnt: 1},
			},
		},
		frontier: []model.Address{addrOf(0x0c), addrOf(0x0d), addrOf(0x0e), addrOf(0x0f)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("result() = %+v, want %+v", got, want)
	}
}

func Test_accumulator_addOverflow(t *testing.T) {
	t.Parallel()

	acc := newAccumulator()
	if err := acc.add(key(0x0b), addrOf(0x0b), classify.Result{Kind: model.KindNormal, Amount: math.MaxUint64}); err != nil {
		t.Fatalf("add() error = %v", err)
	}
	if err := acc.add(key(0x0b), addrOf(0x0b), classify.Result{Kind: model.KindNormal, Amount: 1}); err == nil {
		t.Fatal("add() expected overflow error")
	}
}

func Test_accumulator_empty(t *testing.T) {
	t.Parallel()

	got := newAccumulator().result()
	if got.report.ReceiverCnt != 0 || len(got.report.Entries) != 0 || len(got.frontier) != 0 {
		t.Fatalf("result() = %+v, want empty", got)
	}
}
