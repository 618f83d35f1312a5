package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"starksnap/internal/state"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const envPrefix = "STARKSNAP"

const (
	apiPortKey         = "api_port"
	dbConnKey          = "db_connection_url"
	jwtSecretKey       = "jwt_secret"
	snapRPCURLKey      = "snap_rpc_url"
	snapIDKey          = "snap_id"
	snapVersionKey     = "snap_version"
	starkScanAPIKeyKey = "starkscan_api_key"
	mainnetNodeKey     = "mainnet_node_url"
	sepoliaNodeKey     = "sepolia_node_url"
	defaultChainIDKey  = "default_chain_id"
	walletIDKey        = "wallet_id"
	logLevelKey        = "log_level"
	txnPageSizeKey     = "txn_page_size"
	statusPollKey      = "status_poll_interval"
)

type App struct {
	Port               string
	DBConnectionURL    string
	JWTSecret          string
	SnapRPCURL         string
	SnapID             string
	SnapVersion        string
	StarkScanAPIKey    string
	MainnetNodeURL     string
	SepoliaNodeURL     string
	DefaultChainID     string
	WalletID           string
	LogLevel           string
	TxnPageSize        int
	StatusPollInterval time.Duration
}

// SetupViper loads envFile when it exists and returns a viper instance
// reading STARKSNAP_* variables.
func SetupViper(envFile string) (*viper.Viper, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault(apiPortKey, "8080")
	v.SetDefault(snapIDKey, "npm:@consensys/starknet-snap")
	v.SetDefault(snapVersionKey, "*")
	v.SetDefault(defaultChainIDKey, state.SepoliaChainID)
	v.SetDefault(walletIDKey, "default")
	v.SetDefault(logLevelKey, "info")
	v.SetDefault(txnPageSizeKey, 100)
	v.SetDefault(statusPollKey, 30*time.Second)

	return v, nil
}

// BindFlags lets command line flags override the environment.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"port":      apiPortKey,
		"log-level": logLevelKey,
		"wallet-id": walletIDKey,
	}
	for flag, key := range bindings {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}
	return nil
}

func NewApp(v *viper.Viper) (App, error) {
	for _, key := range []string{dbConnKey, jwtSecretKey, snapRPCURLKey, mainnetNodeKey, sepoliaNodeKey} {
		if v.GetString(key) == "" {
			return App{}, fmt.Errorf("%w: %s_%s", errEnvVarNotFound, envPrefix, strings.ToUpper(key))
		}
	}

	defaultChainID := v.GetString(defaultChainIDKey)
	if !state.IsSupportedChain(defaultChainID) {
		return App{}, fmt.Errorf("default chain %s is not supported", defaultChainID)
	}

	return App{
		Port:               v.GetString(apiPortKey),
		DBConnectionURL:    v.GetString(dbConnKey),
		JWTSecret:          v.GetString(jwtSecretKey),
		SnapRPCURL:         v.GetString(snapRPCURLKey),
		SnapID:             v.GetString(snapIDKey),
		SnapVersion:        v.GetString(snapVersionKey),
		StarkScanAPIKey:    v.GetString(starkScanAPIKeyKey),
		MainnetNodeURL:     v.GetString(mainnetNodeKey),
		SepoliaNodeURL:     v.GetString(sepoliaNodeKey),
		DefaultChainID:     defaultChainID,
		WalletID:           v.GetString(walletIDKey),
		LogLevel:           v.GetString(logLevelKey),
		TxnPageSize:        v.GetInt(txnPageSizeKey),
		StatusPollInterval: v.GetDuration(statusPollKey),
	}, nil
}
