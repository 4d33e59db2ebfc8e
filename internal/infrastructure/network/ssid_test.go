package network

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_network "github.com/bnema/banger/internal/infrastructure/network/mocks"
)

func TestCommandProvider_CurrentSSID(t *testing.T) {
	tests := []struct {
		name     string
		out      []byte
		err      error
		wantSSID string
		wantOK   bool
	}{
		{name: "trims trailing newline", out: []byte("BVSD-Staff\n"), wantSSID: "BVSD-Staff", wantOK: true},
		{name: "keeps inner spaces", out: []byte("My Home Wifi\n"), wantSSID: "My Home Wifi", wantOK: true},
		{name: "command error", err: errors.New("exec: \"iwgetid\": executable file not found in $PATH")},
		{name: "empty output", out: []byte("\n")},
		{name: "non-utf8 output", out: []byte{0xff, 0xfe, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mock_network.NewMockCommandRunner(ctrl)
			runner.EXPECT().
				Output(gomock.Any(), "iwgetid", "-r").
				Return(tt.out, tt.err)

			p := NewCommandProvider(WithRunner(runner))
			ssid, ok := p.CurrentSSID(context.Background())

			assert.Equal(t, tt.wantSSID, ssid)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestCommandProvider_CustomCommandAndTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock_network.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Output(gomock.Any(), "nmcli", "-t", "-f", "active,ssid", "dev", "wifi").
		DoAndReturn(func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
			return []byte("home"), nil
		})

	p := NewCommandProvider(
		WithRunner(runner),
		WithCommand("nmcli", "-t", "-f", "active,ssid", "dev", "wifi"),
		WithTimeout(2*time.Second),
	)
	ssid, ok := p.CurrentSSID(context.Background())

	assert.True(t, ok)
	assert.Equal(t, "home", ssid)
}

func TestCommandProvider_TimeoutYieldsNoSSID(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock_network.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Output(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	p := NewCommandProvider(WithRunner(runner), WithTimeout(10*time.Millisecond))
	_, ok := p.CurrentSSID(context.Background())

	assert.False(t, ok)
}

func TestCommandProvider_MissingBinary(t *testing.T) {
	p := NewCommandProvider(WithCommand("banger-definitely-not-a-real-binary"))
	ssid, ok := p.CurrentSSID(context.Background())

	assert.False(t, ok)
	assert.Empty(t, ssid)
}

func TestStaticProvider(t *testing.T) {
	ssid, ok := StaticProvider{SSID: "BVSD"}.CurrentSSID(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "BVSD", ssid)

	_, ok = StaticProvider{}.CurrentSSID(context.Background())
	assert.False(t, ok)
}
