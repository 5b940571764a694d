package validator

import (
	"strings"
	"testing"
)

type sample struct {
	PetName string  `validate:"required"`
	Price   float64 `validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	if err := Struct(sample{PetName: "Mia"}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	err := Struct(sample{Price: -1})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "petName is required") {
		t.Fatalf("missing required message: %s", msg)
	}
	if !strings.Contains(msg, "price must be at least 0") {
		t.Fatalf("missing gte message: %s", msg)
	}
}

type bounded struct {
	Time string `validate:"required,max=10"`
	Age  int    `validate:"max=30"`
}

func TestStruct_Max(t *testing.T) {
	if err := Struct(bounded{Time: "14:00", Age: 3}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	err := Struct(bounded{Time: "14:00:00.000000", Age: 31})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "time must be at most 10 characters") {
		t.Fatalf("missing string max message: %s", msg)
	}
	if !strings.Contains(msg, "age must be at most 30") {
		t.Fatalf("missing numeric max message: %s", msg)
	}
}
