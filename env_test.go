package ravel

import "testing"

func TestEnvValueShadowsAncestor(t *testing.T) {
	type theme string

	var cx Cx
	if got := EnvValue[theme](cx); got != "" {
		t.Fatalf("unset env should yield the zero value, got %q", got)
	}

	outer := WithEnv(cx, theme("dark"))
	if got := EnvValue[theme](outer); got != "dark" {
		t.Fatalf("got %q, want dark", got)
	}

	inner := WithEnv(outer, theme("light"))
	if got := EnvValue[theme](inner); got != "light" {
		t.Fatalf("inner scope should see its own value, got %q", got)
	}
	if got := EnvValue[theme](outer); got != "dark" {
		t.Fatalf("shadowing inner should not mutate outer's copy, got %q", got)
	}
}

func TestEnvValueDistinguishesByType(t *testing.T) {
	type locale string
	type count int

	cx := WithEnv(Cx{}, locale("en-US"))
	cx = WithEnv(cx, count(42))

	if got := EnvValue[locale](cx); got != "en-US" {
		t.Fatalf("got %q, want en-US", got)
	}
	if got := EnvValue[count](cx); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}
