package scene

import (
	"errors"
	"testing"
)

func TestVarList(t *testing.T) {
	v := NewVarList()
	if err := v.Create("score", 0); err != nil {
		t.Fatal(err)
	}
	if err := v.Create("score", 10); !errors.Is(err, ErrVarExists) {
		t.Errorf("duplicate Create = %v, want ErrVarExists", err)
	}

	v.Set("score", 42)
	v.Set("lives", 3)
	got, err := v.Get("score")
	if err != nil || got != 42 {
		t.Errorf("Get(score) = %v, %v", got, err)
	}
	if v.Len() != 2 {
		t.Errorf("Len = %d, want 2", v.Len())
	}

	v.Delete("score")
	v.Delete("score")
	if _, err := v.Get("score"); !errors.Is(err, ErrVarNotFound) {
		t.Errorf("Get after Delete = %v, want ErrVarNotFound", err)
	}

	v.Clear()
	if v.Len() != 0 {
		t.Errorf("Len after Clear = %d", v.Len())
	}
}
