package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, or an empty string when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be "localhost", empty or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses command-line flags into a partial config.
//
//	-a               server listen address host:port
//	-grpc-address    gRPC listen address host:port
//	-d               database DSN
//	-c, -config      JSON config file
//	-token-sign-key  JWT signing key
//	-token-issuer    JWT issuer
//	-token-duration  JWT lifetime (e.g. 24h)
//	-request-timeout server request timeout
//	-hash-key        body signing key
//	-server          server address used by the client
//	-cache           client cache file
//	-feed-interval   client polling interval
//	-mode            client presentation mode (notes|todo)
//	-log-file        client log file
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-note-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress NetAddress
	var (
		databaseDSN    string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		hashKey        string
		adapterAddress string
		cachePath      string
		feedInterval   time.Duration
		mode           string
		logFile        string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Body signing key")
	fs.StringVar(&adapterAddress, "server", "", "Server address used by the client")
	fs.StringVar(&cachePath, "cache", "", "Client cache file")
	fs.DurationVar(&feedInterval, "feed-interval", 0, "Client feed polling interval")
	fs.StringVar(&mode, "mode", "", "Client mode: notes or todo")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Cache: Cache{Path: cachePath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
		},
		Workers: Workers{
			FeedInterval: feedInterval,
		},
		Client: Client{
			Mode:    mode,
			LogFile: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
