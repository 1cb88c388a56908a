package findora

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

type fakeMetrics struct {
	observed  map[string]int
	failed    map[string]int
	truncated int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{observed: map[string]int{}, failed: map[string]int{}}
}

func (m *fakeMetrics) Observe(operation string, err error, _ time.Time) {
	m.observed[operation]++
	if err != nil {
		m.failed[operation]++
	}
}

func (m *fakeMetrics) ObserveTruncated() {
	m.truncated++
}

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, PublicKeyLength)
}

func nativeAssetJSON() string {
	parts := make([]string, len(NativeAsset))
	for i := range parts {
		parts[i] = "0"
	}
	return `{"NonConfidential":[` + strings.Join(parts, ",") + `]}`
}

func plainRecordJSON(key []byte, amount uint64) string {
	return recordJSON(key, fmt.Sprintf(`{"NonConfidential":"%d"}`, amount), nativeAssetJSON())
}

func confidentialRecordJSON(key []byte) string {
	return recordJSON(key, `{"Confidential":["AAAA","BBBB"]}`, `{"Confidential":"CCCC"}`)
}

func recordJSON(key []byte, amount, asset string) string {
	return fmt.Sprintf(`{"amount":%s,"asset_type":%s,"public_key":"%s"}`,
		amount, asset, base64.URLEncoding.EncodeToString(key))
}

func transferOpJSON(records ...string) string {
	return `{"TransferAsset":{"body":{"inputs":[],"transfer":{"outputs":[` + strings.Join(records, ",") + `]}}}}`
}

func issueOpJSON(records ...string) string {
	pairs := make([]string, 0, len(records))
	for _, r := range records {
		pairs = append(pairs, `[{"record":`+r+`},null]`)
	}
	return `{"IssueAsset":{"body":{"code":{"val":[1]},"records":[` + strings.Join(pairs, ",") + `]}}}`
}

func txJSON(ops ...string) string {
	return `{"body":{"no_replay_token":[1,2],"operations":[` + strings.Join(ops, ",") + `]},"signatures":[]}`
}

func encodeTx(body string) string {
	return base64.StdEncoding.EncodeToString([]byte(body))
}
