package device

import (
	"testing"
)

// unusableBackend mimics a device API that is compiled in but finds no
// working device at runtime.
type unusableBackend struct{}

func (unusableBackend) Info() BackendInfo {
	return BackendInfo{Name: "unusable"}
}

func (unusableBackend) Available() bool {
	return false
}

func (unusableBackend) Devices() ([]DeviceInfo, error) {
	return nil, ErrBackendUnavailable
}

func (unusableBackend) NewContext(int) (Context, error) {
	return nil, ErrBackendUnavailable
}

func TestRegisterDefaultBackendProvidesUsableDevice(t *testing.T) {
	info := RegisterDefaultBackend()
	got, ok := CurrentBackendInfo()
	if !ok || got.Name != info.Name {
		t.Fatalf("CurrentBackendInfo = %+v, %v, want %+v", got, ok, info)
	}
	ctx, err := NewContext(0)
	if err != nil {
		t.Fatalf("NewContext after default registration: %v", err)
	}
	_ = ctx.Close()
}

func TestRegisterPreferredFallsBackToMock(t *testing.T) {
	info := registerPreferred(unusableBackend{})
	if info.Name != "mock" {
		t.Fatalf("registered backend = %q, want fallback to mock", info.Name)
	}
	if _, err := NewContext(0); err != nil {
		t.Fatalf("NewContext on fallback backend: %v", err)
	}
}
