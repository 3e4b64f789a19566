package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN of the files index
//	-f blob storage directory
//	-c/-config json file path with configs
//	-api-secret admin API shared secret
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-shots-dir staged camera shots directory
//	-media-dir image library directory
//	-documents-dir document picker directory
//	-destination default upload destination URL
//	-upload-timeout outbound upload request timeout
//	-best-effort default to the best-effort completion policy
//	-history-db client upload history SQLite path
//	-retention-age stored file age beyond which files are pruned
//	-retention-interval how often the retention worker runs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var blobDir string
	var jsonConfigPath string
	var apiSecret string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var shotsDir, mediaDir, documentsDir string
	var destination string
	var uploadTimeout time.Duration
	var bestEffort bool
	var historyDSN string
	var retentionAge, retentionInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Files index database DSN")
	flag.StringVar(&blobDir, "f", "", "Blob storage directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&apiSecret, "api-secret", "", "Admin API shared secret")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&shotsDir, "shots-dir", "", "Staged camera shots directory")
	flag.StringVar(&mediaDir, "media-dir", "", "Image library directory")
	flag.StringVar(&documentsDir, "documents-dir", "", "Document picker directory")
	flag.StringVar(&destination, "destination", "", "Default upload destination URL")
	flag.DurationVar(&uploadTimeout, "upload-timeout", 0, "Outbound upload request timeout")
	flag.BoolVar(&bestEffort, "best-effort", false, "Default to the best-effort completion policy")
	flag.StringVar(&historyDSN, "history-db", "", "Client upload history SQLite path")
	flag.DurationVar(&retentionAge, "retention-age", 0, "Stored file age beyond which files are pruned")
	flag.DurationVar(&retentionInterval, "retention-interval", 0, "How often the retention worker runs")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			APISecret:     apiSecret,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				BlobDir: blobDir,
			},
			History: History{
				DSN: historyDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Media: Media{
			ShotsDir:     shotsDir,
			MediaDir:     mediaDir,
			DocumentsDir: documentsDir,
		},
		Uploader: Uploader{
			Destination:    destination,
			RequestTimeout: uploadTimeout,
			BestEffort:     bestEffort,
		},
		Workers: Workers{
			RetentionAge:      retentionAge,
			RetentionInterval: retentionInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
