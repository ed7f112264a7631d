package auth

import (
	"context"
	"errors"
	"testing"
)

func TestWithCaller_CallerFromCtx(t *testing.T) {
	caller := "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"
	ctx := WithCaller(context.Background(), caller)

	got, err := CallerFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != caller {
		t.Fatalf("expected %q, got %q", caller, got)
	}
}

func TestCallerFromCtx_EmptyContext(t *testing.T) {
	_, err := CallerFromCtx(context.Background())
	if !errors.Is(err, ErrCallerNotFound) {
		t.Fatalf("expected ErrCallerNotFound, got %v", err)
	}
}

func TestCallerFromCtx_EmptyAddress(t *testing.T) {
	ctx := WithCaller(context.Background(), "")
	_, err := CallerFromCtx(ctx)
	if !errors.Is(err, ErrCallerNotFound) {
		t.Fatalf("expected ErrCallerNotFound for empty address, got %v", err)
	}
}

func TestCallerFromCtx_Isolation(t *testing.T) {
	caller1 := "tz1-owner-one"
	caller2 := "tz1-owner-two"

	ctx1 := WithCaller(context.Background(), caller1)
	ctx2 := WithCaller(context.Background(), caller2)

	got1, _ := CallerFromCtx(ctx1)
	got2, _ := CallerFromCtx(ctx2)

	if got1 != caller1 {
		t.Fatalf("ctx1: expected %q, got %q", caller1, got1)
	}
	if got2 != caller2 {
		t.Fatalf("ctx2: expected %q, got %q", caller2, got2)
	}
	if got1 == got2 {
		t.Fatal("expected different callers in isolated contexts")
	}
}
