package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. An empty host means "all
// interfaces".
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the gateway's command-line flags from args.
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-c/-config json or yaml config file path
//	-resource-url upstream CSV resource URL
//	-upstream-timeout upstream request timeout (e.g. "10s")
//	-disable-http-cache turn off conditional upstream requests
//	-cache-ttl records cache TTL (e.g. "5m")
//	-row-limit maximum number of CSV data rows
//	-request-timeout inbound request timeout (e.g. "30s")
//
// Secrets (credentials and the access token) are deliberately not accepted as
// flags; they are visible in process listings.
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var configPath string
	var resourceURL string
	var upstreamTimeout time.Duration
	var disableHTTPCache bool
	var cacheTTL time.Duration
	var rowLimit int
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("meds-gateway", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&configPath, "c", "", "Config file path (.json, .yaml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&resourceURL, "resource-url", "", "Upstream CSV resource URL")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream request timeout (e.g., 10s)")
	fs.BoolVar(&disableHTTPCache, "disable-http-cache", false, "Disable conditional upstream requests")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Records cache TTL (e.g., 5m)")
	fs.IntVar(&rowLimit, "row-limit", 0, "Maximum number of CSV data rows")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Upstream: Upstream{
			ResourceURL:      resourceURL,
			Timeout:          upstreamTimeout,
			DisableHTTPCache: disableHTTPCache,
		},
		Cache: Cache{
			TTL:      cacheTTL,
			RowLimit: rowLimit,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. It validates the port range and checks IP correctness unless
// the host is empty or "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
