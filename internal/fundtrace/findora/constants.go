// Package findora implements the Findora ledger client, transaction decoding and address codec.
package findora

import "github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"

const (
	// AddressHRP is the bech32 human readable part of account addresses.
	AddressHRP = "fra"
	// PublicKeyLength is the size of an account public key.
	PublicKeyLength = 32

	// Decimals is the number of fractional digits of the native asset.
	Decimals = 6
	// BlockIntervalSeconds is the target block time.
	BlockIntervalSeconds = 16

	// DefaultServerURL is the production indexer.
	DefaultServerURL = "https://prod-mainnet.prod.findora.org"
	// LocalServerURL is used when tracing against a local node.
	LocalServerURL = "http://localhost"
	// DefaultRPCPort is the tendermint RPC port of the indexer.
	DefaultRPCPort = 26657

	// DefaultPageSize is the tx_search page size.
	DefaultPageSize = 100
)

var (
	// BurnPublicKey receives fees and burned value.
	BurnPublicKey = [PublicKeyLength]byte{}
	// StakingPublicKey receives stake deposits and EVM conversions.
	StakingPublicKey = [PublicKeyLength]byte{
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	}
	// NativeAsset is the FRA asset code.
	NativeAsset = model.AssetCode{}
)

// ReservedAddresses are the default trace seeds.
var ReservedAddresses = []model.Address{
	"fra1s9c6p0656as48w8su2gxntc3zfuud7m66847j6yh7n8wezazws3s68p0m9",
	"fra1zjfttcnvyv9ypy2d4rcg7t4tw8n88fsdzpggr0y2h827kx5qxmjshwrlx7",
	"fra18rfyc9vfyacssmr5x7ku7udyd5j5vmfkfejkycr06e4as8x7n3dqwlrjrc",
	"fra1kvf8z5f5m8wmp2wfkscds45xv3yp384eszu2mpre836x09mq5cqsknltvj",
	"fra1w8s3e7v5a78623t8cq43uejtw90yzd0xctpwv63um5amtv72detq95v0dy",
	"fra1ukju0dhmx0sjwzcgjzgg3e7n6f755jkkfl9akq4hleulds9a0hgq4uzcp5",
	"fra1mjdr0mgn2e0670hxptpzu9tmf0ary8yj8nv90znjspwdupv9aacqwrg3dx",
	"fra1whn756rtqt3gpsmdlw6pvns75xdh3ttqslvxaf7eefwa83pcnlhsree9gv",
	"fra1dkn9w5c674grdl6gmvj0s8zs0z2nf39zrmp3dpq5rqnnf9axwjrqexqnd6", // foundation account
}
