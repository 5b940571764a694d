package pagination

import "testing"

func TestNew_Clamps(t *testing.T) {
	p := New(0, 500)
	if p.Page != 1 || p.Limit != MaxLimit || p.Offset != 0 {
		t.Fatalf("unexpected params: %+v", p)
	}

	p = New(3, 0)
	if p.Limit != DefaultLimit || p.Offset != 2*DefaultLimit {
		t.Fatalf("unexpected params: %+v", p)
	}
}

func TestNew_ClampsHugePage(t *testing.T) {
	p := New(int(^uint(0)>>1), MaxLimit)
	if p.Page != MaxPage {
		t.Fatalf("expected page clamped to %d, got %d", MaxPage, p.Page)
	}
	if p.Offset != (MaxPage-1)*MaxLimit || p.Offset < 0 {
		t.Fatalf("unexpected offset %d", p.Offset)
	}
}

func TestGetMeta(t *testing.T) {
	m := GetMeta(New(2, 10), 25)
	if m.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", m.TotalPages)
	}
	if !m.HasNext || !m.HasPrev {
		t.Fatalf("expected both next and prev: %+v", m)
	}

	m = GetMeta(New(1, 10), 10)
	if m.TotalPages != 1 || m.HasNext || m.HasPrev {
		t.Fatalf("unexpected meta: %+v", m)
	}
}
