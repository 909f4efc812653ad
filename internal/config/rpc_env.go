package config

import (
	"os"
	"regexp"
	"strings"
	"unicode"
)

// envVarPattern matches an endpoint that is a single ${NAME} reference
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar returns the variable name when an endpoint is exactly ${NAME}
func DetectEnvVar(raw string) (string, bool) {
	m := envVarPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// unsetEnvVar returns the variable a ${NAME} endpoint refers to when that
// variable is empty in the environment
func unsetEnvVar(raw string) (string, bool) {
	name, ok := DetectEnvVar(raw)
	if !ok || os.Getenv(name) != "" {
		return "", false
	}
	return name, true
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Convention: camelCase split into words, uppercase, dashes/dots to underscores, append _RPC_URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, bscTestnet -> BSC_TESTNET_RPC_URL
func GenerateEnvVarName(networkName string) string {
	var b strings.Builder
	runes := []rune(networkName)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune('_')
		}
		b.WriteRune(r)
	}
	name := strings.ToUpper(b.String())
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// ExpandRPCURL expands env var references in an endpoint value. A pure
// ${VAR} reference to an unset variable expands to "".
func ExpandRPCURL(raw string) string {
	return strings.TrimSpace(os.ExpandEnv(raw))
}
