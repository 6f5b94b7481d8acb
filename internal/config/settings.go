/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
)

// CMSSettings is implemented by exactly one settings type per CMS provider
type CMSSettings interface {
	Provider() model.ProviderID
	validate() []*model.ValidationError
	cmsSettings()
}

// EcommerceSettings is implemented by exactly one settings type per e-commerce provider
type EcommerceSettings interface {
	Provider() model.ProviderID
	validate() []*model.ValidationError
	ecommerceSettings()
}

// DecapSettings configures the git-backed Decap CMS
type DecapSettings struct {
	Repository  string `yaml:"repository"`
	Branch      string `yaml:"branch"`
	AuthBackend string `yaml:"auth_backend"`
}

// TinaSettings configures TinaCMS
type TinaSettings struct {
	ClientID string `yaml:"client_id"`
	Branch   string `yaml:"branch"`
}

// SanitySettings configures a Sanity content lake
type SanitySettings struct {
	ProjectID  string `yaml:"project_id"`
	Dataset    string `yaml:"dataset"`
	APIVersion string `yaml:"api_version"`
	UseCDN     bool   `yaml:"use_cdn"`
}

// ContentfulSettings configures a Contentful space
type ContentfulSettings struct {
	SpaceID        string `yaml:"space_id"`
	Environment    string `yaml:"environment"`
	PreviewEnabled bool   `yaml:"preview_enabled"`
}

// SnipcartSettings configures the Snipcart cart
type SnipcartSettings struct {
	Mode     string `yaml:"mode"`
	Currency string `yaml:"currency"`
}

// FoxySettings configures a Foxy.io store
type FoxySettings struct {
	StoreDomain string `yaml:"store_domain"`
	Currency    string `yaml:"currency"`
}

// ShopifySettings configures either Shopify plan; Plan is set from the provider id
type ShopifySettings struct {
	Plan                 model.ProviderID `yaml:"-"`
	StoreDomain          string           `yaml:"store_domain"`
	StorefrontAPIVersion string           `yaml:"storefront_api_version"`
}

func (DecapSettings) Provider() model.ProviderID      { return catalog.Decap }
func (TinaSettings) Provider() model.ProviderID       { return catalog.Tina }
func (SanitySettings) Provider() model.ProviderID     { return catalog.Sanity }
func (ContentfulSettings) Provider() model.ProviderID { return catalog.Contentful }
func (SnipcartSettings) Provider() model.ProviderID   { return catalog.Snipcart }
func (FoxySettings) Provider() model.ProviderID       { return catalog.Foxy }
func (s ShopifySettings) Provider() model.ProviderID  { return s.Plan }

func (DecapSettings) cmsSettings()          {}
func (TinaSettings) cmsSettings()           {}
func (SanitySettings) cmsSettings()         {}
func (ContentfulSettings) cmsSettings()     {}
func (SnipcartSettings) ecommerceSettings() {}
func (FoxySettings) ecommerceSettings()     {}
func (ShopifySettings) ecommerceSettings()  {}

var (
	repositoryPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
	datasetPattern    = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	apiVersionPattern = regexp.MustCompile(`^\d{4}-\d{2}(-\d{2})?$`)
	currencyPattern   = regexp.MustCompile(`^[a-z]{3}$`)
)

func (s DecapSettings) validate() []*model.ValidationError {
	var errs []*model.ValidationError
	if s.Repository != "" && !repositoryPattern.MatchString(s.Repository) {
		errs = append(errs, model.NewValidationError("cms_config.settings.repository", s.Repository, "must be in owner/name form"))
	}
	switch s.AuthBackend {
	case "github", "gitlab", "git-gateway":
	default:
		errs = append(errs, model.NewValidationError("cms_config.settings.auth_backend", s.AuthBackend, "must be one of github, gitlab, git-gateway"))
	}
	return errs
}

func (s TinaSettings) validate() []*model.ValidationError {
	return nil
}

func (s SanitySettings) validate() []*model.ValidationError {
	var errs []*model.ValidationError
	if !datasetPattern.MatchString(s.Dataset) {
		errs = append(errs, model.NewValidationError("cms_config.settings.dataset", s.Dataset, "must be lowercase alphanumeric"))
	}
	if !apiVersionPattern.MatchString(s.APIVersion) {
		errs = append(errs, model.NewValidationError("cms_config.settings.api_version", s.APIVersion, "must be a YYYY-MM-DD date"))
	}
	return errs
}

func (s ContentfulSettings) validate() []*model.ValidationError {
	return nil
}

func (s SnipcartSettings) validate() []*model.ValidationError {
	var errs []*model.ValidationError
	if s.Mode != "test" && s.Mode != "live" {
		errs = append(errs, model.NewValidationError("ecommerce_config.settings.mode", s.Mode, "must be test or live"))
	}
	if !currencyPattern.MatchString(s.Currency) {
		errs = append(errs, model.NewValidationError("ecommerce_config.settings.currency", s.Currency, "must be a lowercase ISO 4217 code"))
	}
	return errs
}

func (s FoxySettings) validate() []*model.ValidationError {
	var errs []*model.ValidationError
	if s.StoreDomain != "" && !strings.Contains(s.StoreDomain, ".") {
		errs = append(errs, model.NewValidationError("ecommerce_config.settings.store_domain", s.StoreDomain, "must be a domain"))
	}
	if !currencyPattern.MatchString(s.Currency) {
		errs = append(errs, model.NewValidationError("ecommerce_config.settings.currency", s.Currency, "must be a lowercase ISO 4217 code"))
	}
	return errs
}

func (s ShopifySettings) validate() []*model.ValidationError {
	var errs []*model.ValidationError
	if s.StoreDomain != "" && !strings.HasSuffix(s.StoreDomain, ".myshopify.com") {
		errs = append(errs, model.NewValidationError("ecommerce_config.settings.store_domain", s.StoreDomain, "must end in .myshopify.com"))
	}
	if !apiVersionPattern.MatchString(s.StorefrontAPIVersion) {
		errs = append(errs, model.NewValidationError("ecommerce_config.settings.storefront_api_version", s.StorefrontAPIVersion, "must be a YYYY-MM date"))
	}
	return errs
}

// decodeCMSSettings decodes raw settings into the provider's settings type,
// rejecting keys the type does not declare
func decodeCMSSettings(provider model.ProviderID, raw map[string]any) (CMSSettings, error) {
	switch provider {
	case catalog.Decap:
		return decodeInto(raw, DecapSettings{Branch: "main", AuthBackend: "github"})
	case catalog.Tina:
		return decodeInto(raw, TinaSettings{Branch: "main"})
	case catalog.Sanity:
		return decodeInto(raw, SanitySettings{Dataset: "production", APIVersion: "2024-01-01", UseCDN: true})
	case catalog.Contentful:
		return decodeInto(raw, ContentfulSettings{Environment: "master"})
	default:
		return nil, fmt.Errorf("no settings schema for cms provider '%s'", provider)
	}
}

// decodeEcommerceSettings decodes raw settings into the provider's settings type,
// rejecting keys the type does not declare
func decodeEcommerceSettings(provider model.ProviderID, raw map[string]any) (EcommerceSettings, error) {
	switch provider {
	case catalog.Snipcart:
		return decodeInto(raw, SnipcartSettings{Mode: "test", Currency: "usd"})
	case catalog.Foxy:
		return decodeInto(raw, FoxySettings{Currency: "usd"})
	case catalog.ShopifyBasic, catalog.ShopifyAdvanced:
		return decodeInto(raw, ShopifySettings{Plan: provider, StorefrontAPIVersion: "2024-10"})
	default:
		return nil, fmt.Errorf("no settings schema for ecommerce provider '%s'", provider)
	}
}

// decodeInto overlays raw onto defaults
func decodeInto[T any](raw map[string]any, defaults T) (T, error) {
	err := decodeStrict(raw, &defaults)
	return defaults, err
}

// decodeStrict round-trips raw through YAML into target with unknown keys rejected
func decodeStrict(raw map[string]any, target any) error {
	if len(raw) == 0 {
		return nil
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
