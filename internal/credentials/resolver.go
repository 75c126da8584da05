// Package credentials resolves AWS profiles into usable SDK configurations,
// including the "latest" sentinel profile backed by a local cache of the most
// recently used credentials.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/raywall/apigw-lambda/internal/config"
)

// LatestProfile is the sentinel profile name that resolves to the most
// recently used credentials instead of a named profile.
const LatestProfile = "latest"

// ErrCredentialsNotFound reports that no usable credentials exist for the
// requested profile.
var ErrCredentialsNotFound = errors.New("aws credentials not found")

type loadFunc func(ctx context.Context, profile, region string) (aws.Config, error)

// Resolver maps profile names to authenticated aws.Configs.
type Resolver struct {
	load     loadFunc
	record   func(profile, region string) error
	lastUsed func() (profile, region string, usedAt time.Time, ok bool)
}

// NewResolver returns a Resolver backed by the SDK shared-config loader and
// the local latest-profile cache.
func NewResolver() *Resolver {
	return &Resolver{
		load:     loadSharedConfig,
		record:   config.RecordLastUsed,
		lastUsed: config.LastUsed,
	}
}

// Resolve produces an aws.Config for the given profile and optional region.
// An empty profile uses the default credential chain. Successful resolutions
// are recorded so that the "latest" profile can find them later.
func (r *Resolver) Resolve(ctx context.Context, profile, region string) (aws.Config, error) {
	if profile == LatestProfile {
		return r.resolveLatest(ctx, region)
	}

	cfg, err := r.load(ctx, profile, region)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading aws config for profile %q: %w", displayName(profile), err)
	}

	if err := validateCredentials(ctx, cfg); err != nil {
		return aws.Config{}, fmt.Errorf("profile %q: %w: %w", displayName(profile), ErrCredentialsNotFound, err)
	}

	// Cache failures must not break a successful resolution.
	_ = r.record(profile, cfg.Region)

	return cfg, nil
}

// resolveLatest tries the cached most-recently-used profile first and falls
// back to the default credential chain. Staleness is judged solely by whether
// the cached profile's credentials still retrieve.
func (r *Resolver) resolveLatest(ctx context.Context, region string) (aws.Config, error) {
	if profile, cachedRegion, _, ok := r.lastUsed(); ok {
		if region == "" {
			region = cachedRegion
		}
		cfg, err := r.load(ctx, profile, region)
		if err == nil && validateCredentials(ctx, cfg) == nil {
			_ = r.record(profile, cfg.Region)
			return cfg, nil
		}
	}

	cfg, err := r.load(ctx, "", region)
	if err == nil && validateCredentials(ctx, cfg) == nil {
		_ = r.record("", cfg.Region)
		return cfg, nil
	}

	return aws.Config{}, fmt.Errorf("resolving %q profile: %w", LatestProfile, ErrCredentialsNotFound)
}

func loadSharedConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if strings.TrimSpace(region) != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// validateCredentials forces one retrieval through the provider chain so a
// misconfigured profile fails here instead of on the first service call.
func validateCredentials(ctx context.Context, cfg aws.Config) error {
	if cfg.Credentials == nil {
		return errors.New("no credential provider configured")
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return err
	}
	if creds.Expired() {
		return errors.New("credentials are expired")
	}
	return nil
}

func displayName(profile string) string {
	if profile == "" {
		return "default"
	}
	return profile
}
