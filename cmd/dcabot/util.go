package main

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/xlab/suplog"
	"google.golang.org/grpc"
)

// readEnv is a special utility that reads `.env` file into actual environment variables of the current app
func readEnv() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Warningln("failed to load .env file")
	}
}

// logLevel converts vague log level name into typed level.
func logLevel(s string) log.Level {
	switch s {
	case "1", "error":
		return log.ErrorLevel
	case "2", "warn":
		return log.WarnLevel
	case "3", "info":
		return log.InfoLevel
	case "4", "debug":
		return log.DebugLevel
	default:
		return log.FatalLevel
	}
}

// duration parses duration from string with a provided default fallback.
func duration(s string, defaults time.Duration) time.Duration {
	dur, err := time.ParseDuration(s)
	if err != nil {
		dur = defaults
	}
	return dur
}

// parseCoinIDMapping converts a list of asset:coin-id pairs to a typed map.
// The asset part is a bank denom or a CW20 contract address.
func parseCoinIDMapping(items []string) map[string]string {
	res := make(map[string]string)

	for _, item := range items {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
			log.Fatalln("failed to parse coin id mapping: check that all inputs contain valid asset:coin-id pairs")
		}

		res[parts[0]] = parts[1]
	}

	return res
}

// dialAddr strips the URI scheme off a GRPC endpoint, the dialer wants a
// plain host:port.
func dialAddr(addr string) string {
	for _, scheme := range []string{"tcp://", "http://", "https://"} {
		if strings.HasPrefix(addr, scheme) {
			return strings.TrimPrefix(addr, scheme)
		}
	}

	return addr
}

// newPassReader returns an io.Reader that feeds the keyring passphrase prompt.
func newPassReader(pass string) io.Reader {
	return &passReader{
		pass: pass,
		buf:  new(bytes.Buffer),
	}
}

type passReader struct {
	pass string
	buf  *bytes.Buffer
}

var _ io.Reader = &passReader{}

func (r *passReader) Read(p []byte) (n int, err error) {
	n, err = r.buf.Read(p)
	if err == io.EOF || n == 0 {
		r.buf.WriteString(r.pass + "\n")

		n, err = r.buf.Read(p)
	}

	return
}

// orShutdown fatals the app if there was an error.
func orShutdown(err error) {
	if err != nil && err != grpc.ErrServerStopped {
		log.WithError(err).Fatalln("unable to start dcabot")
	}
}
