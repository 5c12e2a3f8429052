package contract

import (
	"bytes"
	"compress/gzip"
	"errors"
	"testing"

	"github.com/embermint/embermint/internal/storage"
	"github.com/embermint/embermint/pkg/types"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewState(storage.NewMemory(), types.TokenID{0x02})
}

func TestState_DefaultsToZero(t *testing.T) {
	st := newTestState(t)

	for name, read := range map[string]func() (types.Amount, error){
		"TotalSupply":  st.TotalSupply,
		"Minted":       st.Minted,
		"ValuePerMint": st.ValuePerMint,
		"Cap":          st.Cap,
	} {
		v, err := read()
		if err != nil {
			t.Fatalf("%s error: %v", name, err)
		}
		if !v.IsZero() {
			t.Errorf("%s = %s on fresh state, want 0", name, v)
		}
	}

	name, err := st.Name()
	if err != nil || name != "" {
		t.Errorf("Name() = %q, %v on fresh state", name, err)
	}
}

func TestState_SetCapSentinel(t *testing.T) {
	st := newTestState(t)

	// cap 0 is shorthand for unlimited and stores as MaxAmount.
	if err := st.SetCap(types.NewAmount(0)); err != nil {
		t.Fatalf("SetCap(0) error: %v", err)
	}
	got, err := st.Cap()
	if err != nil {
		t.Fatalf("Cap() error: %v", err)
	}
	if got.Cmp(types.MaxAmount()) != 0 {
		t.Errorf("Cap() after SetCap(0) = %s, want MaxAmount", got)
	}

	// Nonzero caps store as-is.
	if err := st.SetCap(types.NewAmount(5)); err != nil {
		t.Fatalf("SetCap(5) error: %v", err)
	}
	got, err = st.Cap()
	if err != nil {
		t.Fatalf("Cap() error: %v", err)
	}
	if got.Uint64() != 5 {
		t.Errorf("Cap() = %s, want 5", got)
	}
}

func TestState_IncreaseTotalSupply(t *testing.T) {
	st := newTestState(t)

	if err := st.IncreaseTotalSupply(types.NewAmount(1000)); err != nil {
		t.Fatalf("IncreaseTotalSupply() error: %v", err)
	}
	if err := st.IncreaseTotalSupply(types.NewAmount(50)); err != nil {
		t.Fatalf("IncreaseTotalSupply() error: %v", err)
	}

	total, err := st.TotalSupply()
	if err != nil {
		t.Fatalf("TotalSupply() error: %v", err)
	}
	if total.Uint64() != 1050 {
		t.Errorf("TotalSupply() = %s, want 1050", total)
	}
}

func TestState_SupplyOverflow(t *testing.T) {
	st := newTestState(t)

	if err := st.IncreaseTotalSupply(types.MaxAmount()); err != nil {
		t.Fatalf("first increase error: %v", err)
	}
	err := st.IncreaseTotalSupply(types.NewAmount(1))
	if !errors.Is(err, ErrSupplyOverflow) {
		t.Errorf("error = %v, want ErrSupplyOverflow", err)
	}

	// The failed increase left the counter untouched.
	total, _ := st.TotalSupply()
	if total.Cmp(types.MaxAmount()) != 0 {
		t.Errorf("TotalSupply() after overflow = %s", total)
	}
}

func TestState_Mint(t *testing.T) {
	st := newTestState(t)

	transfer, err := st.Mint(types.NewAmount(10))
	if err != nil {
		t.Fatalf("Mint() error: %v", err)
	}
	if transfer.ID != (types.TokenID{0x02}) {
		t.Errorf("Mint() transfer ID = %s, want contract's own identity", transfer.ID)
	}
	if transfer.Value.Uint64() != 10 {
		t.Errorf("Mint() transfer value = %s, want 10", transfer.Value)
	}

	total, _ := st.TotalSupply()
	if total.Uint64() != 10 {
		t.Errorf("TotalSupply() = %s after mint", total)
	}

	// Mint only touches the supply counter.
	minted, _ := st.Minted()
	if !minted.IsZero() {
		t.Errorf("Minted() = %s, mint must not touch it", minted)
	}
}

func TestState_IncrementMinted(t *testing.T) {
	st := newTestState(t)

	for i := 1; i <= 3; i++ {
		if err := st.IncrementMinted(); err != nil {
			t.Fatalf("IncrementMinted() error: %v", err)
		}
	}
	minted, err := st.Minted()
	if err != nil {
		t.Fatalf("Minted() error: %v", err)
	}
	if minted.Uint64() != 3 {
		t.Errorf("Minted() = %s, want 3", minted)
	}
}

func TestState_Identity(t *testing.T) {
	st := newTestState(t)

	if err := st.SetName("Ember"); err != nil {
		t.Fatalf("SetName() error: %v", err)
	}
	if err := st.SetSymbol("EMB"); err != nil {
		t.Fatalf("SetSymbol() error: %v", err)
	}

	name, err := st.Name()
	if err != nil || name != "Ember" {
		t.Errorf("Name() = %q, %v", name, err)
	}
	symbol, err := st.Symbol()
	if err != nil || symbol != "EMB" {
		t.Errorf("Symbol() = %q, %v", symbol, err)
	}
}

func TestState_CorruptText(t *testing.T) {
	db := storage.NewMemory()
	db.Put([]byte("name"), []byte{0xff, 0xfe})

	st := NewState(db, types.TokenID{})
	if _, err := st.Name(); !errors.Is(err, ErrCorruptText) {
		t.Errorf("Name() error = %v, want ErrCorruptText", err)
	}
}

func TestState_Data(t *testing.T) {
	st := newTestState(t)

	payload := []byte("token metadata payload")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write(payload)
	zw.Close()

	if err := st.SetData(buf.Bytes()); err != nil {
		t.Fatalf("SetData() error: %v", err)
	}
	got, err := st.Data()
	if err != nil {
		t.Fatalf("Data() error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Data() = %q, want %q", got, payload)
	}
}

func TestState_DataEmptyCases(t *testing.T) {
	tests := []struct {
		name string
		prep func(st *State)
	}{
		{"never set", func(st *State) {}},
		{"set nil", func(st *State) { st.SetData(nil) }},
		{"not gzip", func(st *State) { st.SetData([]byte("raw junk")) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestState(t)
			tt.prep(st)
			got, err := st.Data()
			if err != nil {
				t.Fatalf("Data() error: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("Data() = %q, want empty", got)
			}
		})
	}
}

func TestState_Initialized(t *testing.T) {
	st := newTestState(t)

	done, err := st.Initialized()
	if err != nil || done {
		t.Fatalf("Initialized() = %v, %v on fresh state", done, err)
	}
	if err := st.MarkInitialized(); err != nil {
		t.Fatalf("MarkInitialized() error: %v", err)
	}
	done, err = st.Initialized()
	if err != nil || !done {
		t.Errorf("Initialized() = %v, %v after mark", done, err)
	}
}
