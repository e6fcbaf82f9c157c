// Command tokengen prints a signed access token for local testing. The
// signing key, issuer and default lifetime come from the same config the API
// reads.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"resource-api/config"
	"resource-api/pkg/scope"
)

func main() {
	user := flag.String("user", "", "user id placed in the token (required)")
	role := flag.String("role", "", "role, e.g. admin or editor")
	scopes := flag.String("scopes", "", "comma separated scopes, e.g. book:read,book:write")
	ttl := flag.Duration("ttl", 0, "token lifetime, overrides jwt.ttl")
	flag.Parse()

	if *user == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	lifetime := cfg.JWT.TTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	manager, err := scope.New(cfg.JWT.SecretKey, scope.WithIssuer(cfg.JWT.Issuer), scope.WithTTL(lifetime))
	if err != nil {
		fmt.Printf("Failed to initialize token manager: %v\n", err)
		os.Exit(1)
	}

	token, err := manager.CreateToken(scope.Payload{
		UserID: *user,
		Role:   *role,
		Scopes: splitScopes(*scopes),
	})
	if err != nil {
		fmt.Printf("Failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func splitScopes(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
