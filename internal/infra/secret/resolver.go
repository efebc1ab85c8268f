// Package secret resolves sm:// references in configuration through Google Secret Manager.
package secret

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Scheme prefixes a Secret Manager version name, e.g.
// sm://projects/p/secrets/sendgrid-key/versions/latest.
const Scheme = "sm://"

// AccessFunc returns the payload of a secret version.
type AccessFunc func(ctx context.Context, name string) (string, error)

// secretFields lists the configuration values that may hold references.
func secretFields(cfg *config.Config) []*string {
	fields := []*string{
		&cfg.SecretKey.Access,
		&cfg.SecretKey.Refresh,
	}
	if cfg.SendGrid != nil {
		fields = append(fields, &cfg.SendGrid.APIKey)
	}
	if cfg.Firebase != nil {
		fields = append(fields, &cfg.Firebase.WebAPIKey)
	}
	if cfg.Redis != nil {
		fields = append(fields, &cfg.Redis.Password)
	}

	return fields
}

// HasReferences reports whether any secret field holds an sm:// reference.
func HasReferences(cfg *config.Config) bool {
	for _, field := range secretFields(cfg) {
		if strings.HasPrefix(*field, Scheme) {
			return true
		}
	}

	return false
}

// ResolveConfig replaces every sm:// reference in cfg with the secret payload.
func ResolveConfig(ctx context.Context, cfg *config.Config, access AccessFunc) error {
	for _, field := range secretFields(cfg) {
		name, ok := strings.CutPrefix(*field, Scheme)
		if !ok {
			continue
		}
		if !strings.HasPrefix(name, "projects/") || !strings.Contains(name, "/secrets/") {
			return errors.Errorf("malformed secret reference %q", *field)
		}
		if !strings.Contains(name, "/versions/") {
			name += "/versions/latest"
		}

		value, err := access(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "failed to access secret %s", name)
		}
		*field = value
	}

	return nil
}

// Decorate resolves references in the provided configuration. The Secret
// Manager client is only created when a reference is present. It runs before
// the logger exists, so it reports through the default logger.
func Decorate(cfg *config.Config) (*config.Config, error) {
	if !HasReferences(cfg) {
		return cfg, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create secret manager client")
	}
	defer client.Close()

	access := func(ctx context.Context, name string) (string, error) {
		resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
		if err != nil {
			return "", errors.WithStack(err)
		}
		if resp.GetPayload() == nil {
			return "", errors.Errorf("empty payload for %s", name)
		}

		return strings.TrimSpace(string(resp.GetPayload().GetData())), nil
	}

	if err := ResolveConfig(ctx, cfg, access); err != nil {
		return nil, err
	}

	slog.Info("Secrets resolved from Secret Manager")

	return cfg, nil
}
