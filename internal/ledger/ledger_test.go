package ledger

import "testing"

func TestExplorerURL(t *testing.T) {
	tests := []struct {
		network string
		wantOK  bool
		want    string
	}{
		{network: "mainnet", wantOK: true, want: "https://hashscan.io/mainnet/transaction/0.0.1@1.2"},
		{network: "testnet", wantOK: true, want: "https://hashscan.io/testnet/transaction/0.0.1@1.2"},
		{network: "previewnet", wantOK: true, want: "https://hashscan.io/previewnet/transaction/0.0.1@1.2"},
		{network: "localnet", wantOK: false},
		{network: "", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ExplorerURL(tt.network, "0.0.1@1.2")
		if ok != tt.wantOK {
			t.Errorf("ExplorerURL(%q) ok = %v, want %v", tt.network, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ExplorerURL(%q) = %q, want %q", tt.network, got, tt.want)
		}
	}
}
