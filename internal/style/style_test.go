package style

import "testing"

func TestGenerateHexColor(t *testing.T) {
	if got := GenerateHexColor(255, 0, 16); got != "#FF0010" {
		t.Errorf("GenerateHexColor() = %q", got)
	}
}

func TestBodyShade(t *testing.T) {
	near := BodyShade(1).GetForeground()
	far := BodyShade(100).GetForeground()
	if near == far {
		t.Error("near and far segments share a shade")
	}
	if far != BodyShade(1000).GetForeground() {
		t.Error("shade keeps fading past the minimum")
	}
}
