// Package config resolves the credentials the remote caller signs with.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"ses-identity-tool/internal/util"
)

// Environment variables honored during credential resolution.
const (
	EnvCredentialFile = "AWS_CREDENTIAL_FILE"
	EnvAccessKey      = "AWS_ACCESS_KEY_ID"
	EnvSecretKey      = "AWS_SECRET_ACCESS_KEY"
)

// Credentials is the key pair requests are signed with.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// Resolve locates credentials: the -k flag path first, then the
// AWS_CREDENTIAL_FILE path, then the AWS_ACCESS_KEY_ID /
// AWS_SECRET_ACCESS_KEY pair.
func Resolve(flagPath string) (Credentials, error) {
	if flagPath != "" {
		return LoadFile(flagPath)
	}
	if envPath := os.Getenv(EnvCredentialFile); envPath != "" {
		return LoadFile(envPath)
	}
	access := os.Getenv(EnvAccessKey)
	secret := os.Getenv(EnvSecretKey)
	if access != "" && secret != "" {
		return Credentials{AccessKey: access, SecretKey: secret}, nil
	}
	return Credentials{}, fmt.Errorf("no credentials found: pass -k FILE, set %s, or set %s and %s",
		EnvCredentialFile, EnvAccessKey, EnvSecretKey)
}

// LoadFile reads and parses a credentials file.
func LoadFile(path string) (Credentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials file '%s': %w", path, err)
	}
	creds, err := Parse(raw)
	if err != nil {
		return Credentials{}, fmt.Errorf("invalid credentials file '%s': %w", path, err)
	}
	return creds, nil
}

// Parse sniffs the content format and extracts the key pair. Three formats
// are accepted: the classic properties file (AWSAccessKeyId= / AWSSecretKey=),
// YAML (access_key / secret_key), and credential-process style JSON
// (AccessKeyId / SecretAccessKey).
func Parse(raw []byte) (Credentials, error) {
	content := strings.TrimSpace(string(raw))

	var creds Credentials
	switch {
	case util.LooksLikeJSON(content):
		creds = parseJSON(raw)
	case strings.Contains(content, "AWSAccessKeyId"):
		creds = parseProperties(content)
	default:
		var err error
		creds, err = parseYAML(raw)
		if err != nil {
			return Credentials{}, err
		}
	}

	if creds.AccessKey == "" || creds.SecretKey == "" {
		return Credentials{}, fmt.Errorf("credentials must provide both an access key and a secret key")
	}
	return creds, nil
}

func parseProperties(content string) Credentials {
	var creds Credentials
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "AWSAccessKeyId":
			creds.AccessKey = strings.TrimSpace(value)
		case "AWSSecretKey":
			creds.SecretKey = strings.TrimSpace(value)
		}
	}
	return creds
}

func parseJSON(raw []byte) Credentials {
	return Credentials{
		AccessKey: gjson.GetBytes(raw, "AccessKeyId").String(),
		SecretKey: gjson.GetBytes(raw, "SecretAccessKey").String(),
	}
}

func parseYAML(raw []byte) (Credentials, error) {
	var parsed struct {
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
	}
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse credentials YAML: %w", err)
	}
	return Credentials{AccessKey: parsed.AccessKey, SecretKey: parsed.SecretKey}, nil
}
