/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
	"github.com/sitestack/sitestack/internal/resolve"
	"github.com/sitestack/sitestack/internal/theme"
)

// TagSettingPrefix marks custom settings that become cost-allocation tags
const TagSettingPrefix = "tag:"

var (
	clientIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	regionPattern   = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d$`)
)

// Option customises validation
type Option func(*validator)

// WithCatalog validates provider and engine ids against cat instead of the embedded catalog
func WithCatalog(cat *catalog.Catalog) Option {
	return func(v *validator) {
		if cat != nil {
			v.catalog = cat
		}
	}
}

// WithThemeRegistry enables theme compatibility checks for intents that name a theme
func WithThemeRegistry(registry theme.Registry) Option {
	return func(v *validator) {
		v.themes = registry
	}
}

// WithLogger sets the logger used for soft warnings
func WithLogger(logger *slog.Logger) Option {
	return func(v *validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

type validator struct {
	catalog *catalog.Catalog
	themes  theme.Registry
	logger  *slog.Logger
	errs    *multierror.Error
}

// Validate turns a raw intent into a ClientServiceConfig. Field rules are
// checked first and reported together; the cross-object service type rules run
// only once every field is valid. No config is returned on failure.
func Validate(intent *Intent, opts ...Option) (*ClientServiceConfig, error) {
	if intent == nil {
		return nil, model.NewValidationError("", "", "intent is required")
	}

	v := &validator{
		catalog: catalog.Embedded(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}

	cfg := v.validateFields(intent)
	if err := v.result(); err != nil {
		return nil, err
	}

	v.validateServiceType(cfg)
	if err := v.result(); err != nil {
		return nil, err
	}

	v.validateTheme(cfg)
	if err := v.result(); err != nil {
		return nil, err
	}

	v.applyDefaults(cfg)
	return cfg, nil
}

func (v *validator) fail(field, value, message string) {
	v.add(model.NewValidationError(field, value, message))
}

func (v *validator) add(err error) {
	v.errs = multierror.Append(v.errs, err)
}

func (v *validator) result() error {
	if v.errs == nil {
		return nil
	}
	v.errs.ErrorFormat = formatErrors
	return v.errs.ErrorOrNil()
}

// formatErrors keeps single failures verbatim so callers can show them as-is
func formatErrors(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(errs), strings.Join(messages, "; "))
}

func (v *validator) validateFields(intent *Intent) *ClientServiceConfig {
	cfg := &ClientServiceConfig{
		ClientID:     intent.ClientID,
		CompanyName:  strings.TrimSpace(intent.CompanyName),
		Domain:       intent.Domain,
		ContactEmail: intent.ContactEmail,
		Region:       strings.TrimSpace(intent.Region),
		ThemeID:      strings.TrimSpace(intent.ThemeID),
	}

	v.validateClientID(cfg.ClientID)
	if cfg.CompanyName == "" {
		v.fail("company_name", "", "is required")
	}
	v.validateDomain(cfg.Domain)
	v.validateEmail(cfg.ContactEmail)

	cfg.ServiceTier = parseEnum(v, "service_tier", intent.ServiceTier, "", Tier1, Tier2, Tier3)
	cfg.DeliveryModel = parseEnum(v, "delivery_model", intent.DeliveryModel, DefaultDeliveryModel, Dedicated, Shared)
	cfg.Environment = parseEnum(v, "environment", intent.Environment, DefaultEnvironment, Dev, Staging, Prod)
	cfg.HostingPattern = parseEnum(v, "hosting_pattern", intent.HostingPattern, DefaultHostingPattern, HostingAWS, HostingGitHub, HostingHybrid)

	management := strings.TrimSpace(intent.ManagementModel)
	switch {
	case cfg.ServiceTier == Tier1 && management == "":
		v.fail("management_model", "", "Tier1 requires management_model")
	case cfg.ServiceTier != Tier1 && cfg.ServiceTier != "" && management != "":
		v.fail("management_model", management, fmt.Sprintf("management_model is only allowed for tier1, not %s", cfg.ServiceTier))
	case management != "":
		cfg.ManagementModel = parseEnum(v, "management_model", management, "", SelfManaged, Consultation, FullyManaged)
	}

	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	} else if !regionPattern.MatchString(cfg.Region) {
		v.fail("region", cfg.Region, "must be an AWS region such as us-east-1")
	}

	for key := range intent.CustomSettings {
		name, isTag := strings.CutPrefix(key, TagSettingPrefix)
		if strings.TrimSpace(key) == "" || (isTag && strings.TrimSpace(name) == "") {
			v.fail("custom_settings", key, "keys must be non-empty")
		}
	}
	cfg.CustomSettings = copyStrings(intent.CustomSettings)

	cfg.Integration = v.validateIntegration(&intent.ServiceIntegration)
	return cfg
}

func (v *validator) validateClientID(id string) {
	switch {
	case id == "":
		v.fail("client_id", id, "is required")
	case !clientIDPattern.MatchString(id):
		v.fail("client_id", id, "must contain only lowercase letters, digits and hyphens")
	case strings.HasPrefix(id, "-") || strings.HasSuffix(id, "-"):
		v.fail("client_id", id, "must not start or end with a hyphen")
	case strings.Contains(id, "--"):
		v.fail("client_id", id, "must not contain consecutive hyphens")
	}
}

func (v *validator) validateDomain(domain string) {
	switch {
	case domain == "":
		v.fail("domain", domain, "is required")
	case strings.ContainsFunc(domain, isSpace):
		v.fail("domain", domain, "must not contain whitespace")
	case !strings.Contains(domain, "."):
		v.fail("domain", domain, "must contain at least one dot")
	}
}

func (v *validator) validateEmail(email string) {
	at := strings.LastIndex(email, "@")
	if email == "" {
		v.fail("contact_email", email, "is required")
		return
	}
	if at <= 0 || strings.ContainsFunc(email, isSpace) {
		v.fail("contact_email", email, "must be an email address")
		return
	}
	host := email[at+1:]
	if !strings.Contains(host, ".") || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		v.fail("contact_email", email, "must have a dotted domain after '@'")
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func (v *validator) validateIntegration(raw *IntegrationIntent) ServiceIntegrationConfig {
	integration := ServiceIntegrationConfig{
		WebhooksEnabled: boolOr(raw.WebhooksEnabled, true),
		CachingEnabled:  boolOr(raw.CachingEnabled, true),
	}

	integration.ServiceType = parseEnum(v, "service_integration.service_type", raw.ServiceType, "",
		StaticSite, CMSTier, EcommerceTier, ComposedStack)
	integration.IntegrationMode = parseEnum(v, "service_integration.integration_mode",
		strings.ReplaceAll(raw.IntegrationMode, "-", "_"), Direct, Direct, EventDriven)

	if engine := strings.TrimSpace(raw.SSGEngine); engine != "" {
		if _, err := v.catalog.Engine(model.Engine(engine)); err != nil {
			v.add(err)
		} else {
			integration.SSGEngine = model.Engine(engine)
		}
	}

	if raw.CMSConfig != nil {
		integration.CMS = v.validateCMS(raw.CMSConfig)
	}
	if raw.EcommerceConfig != nil {
		integration.Ecommerce = v.validateEcommerce(raw.EcommerceConfig)
	}

	settings, err := decodeInto(raw.EventConfig, EventSettings{})
	if err != nil {
		v.fail("service_integration.event_config", "", err.Error())
	}
	integration.EventSettings = settings

	return integration
}

func (v *validator) validateCMS(raw *ProviderIntent) *CMSConfig {
	id := model.ProviderID(strings.TrimSpace(raw.Provider))
	if _, err := v.catalog.ProviderOf(model.CategoryCMS, id); err != nil {
		v.add(err)
		return nil
	}
	settings, err := decodeCMSSettings(id, raw.Settings)
	if err != nil {
		v.fail("cms_config.settings", "", err.Error())
		return nil
	}
	for _, e := range settings.validate() {
		v.add(e)
	}
	return &CMSConfig{Provider: id, Settings: settings}
}

func (v *validator) validateEcommerce(raw *ProviderIntent) *EcommerceConfig {
	id := model.ProviderID(strings.TrimSpace(raw.Provider))
	if _, err := v.catalog.ProviderOf(model.CategoryEcommerce, id); err != nil {
		v.add(err)
		return nil
	}
	settings, err := decodeEcommerceSettings(id, raw.Settings)
	if err != nil {
		v.fail("ecommerce_config.settings", "", err.Error())
		return nil
	}
	for _, e := range settings.validate() {
		v.add(e)
	}
	return &EcommerceConfig{Provider: id, Settings: settings}
}

// validateServiceType enforces which provider configs each service type needs
func (v *validator) validateServiceType(cfg *ClientServiceConfig) {
	integration := cfg.Integration
	hasCMS := integration.CMS != nil
	hasEcommerce := integration.Ecommerce != nil

	switch integration.ServiceType {
	case StaticSite:
		if hasCMS || hasEcommerce {
			v.fail("", "", "static site must not declare cms_config or ecommerce_config")
		}
		if integration.SSGEngine == "" {
			v.fail("service_integration.ssg_engine", "", "static site requires ssg_engine")
		}
		if integration.IntegrationMode == EventDriven {
			v.logger.Warn("event-driven integration has no providers to listen to on a static site",
				"client_id", cfg.ClientID, "service_type", string(integration.ServiceType))
		}
	case CMSTier:
		if !hasCMS {
			v.fail("", "", "cms tier requires cms_config")
		}
		if hasEcommerce {
			v.fail("", "", "cms tier must not declare ecommerce_config; use composed_stack")
		}
	case EcommerceTier:
		if !hasEcommerce {
			v.fail("", "", "ecommerce tier requires ecommerce_config")
		}
		if hasCMS {
			v.fail("", "", "ecommerce tier must not declare cms_config; use composed_stack")
		}
	case ComposedStack:
		if !hasCMS || !hasEcommerce {
			v.fail("", "", "composed stack requires both cms_config and ecommerce_config")
		}
	}
}

func (v *validator) validateTheme(cfg *ClientServiceConfig) {
	if cfg.ThemeID == "" || v.themes == nil {
		return
	}
	engine, err := v.effectiveEngine(cfg)
	if err != nil {
		v.add(err)
		return
	}
	err = theme.Check(v.themes, cfg.ThemeID, engine, cfg.HostingPattern.RequiresGitHubPages())
	if err == nil {
		return
	}
	var unknown *model.UnknownIdentifierError
	if errors.As(err, &unknown) {
		v.add(err)
		return
	}
	v.fail("theme_id", cfg.ThemeID, err.Error())
}

// effectiveEngine is the engine the stack will be built with, resolved the way
// the stack factory resolves it when ssg_engine is omitted
func (v *validator) effectiveEngine(cfg *ClientServiceConfig) (model.Engine, error) {
	requested := cfg.Integration.SSGEngine
	switch cfg.Integration.ServiceType {
	case ComposedStack:
		return resolve.Engine(v.catalog, cfg.CMSProvider(), cfg.EcommerceProvider(), requested)
	case CMSTier, EcommerceTier:
		id := cfg.CMSProvider()
		if cfg.Integration.ServiceType == EcommerceTier {
			id = cfg.EcommerceProvider()
		}
		provider, err := v.catalog.Provider(id)
		if err != nil {
			return "", err
		}
		return resolve.SupportedEngine(v.catalog, provider, requested)
	}
	return requested, nil
}

func (v *validator) applyDefaults(cfg *ClientServiceConfig) {
	if cfg.Integration.IntegrationMode == EventDriven && cfg.Integration.EventSettings.IsZero() {
		cfg.Integration.EventSettings = DefaultEventSettings()
	}
}

// parseEnum accepts raw when it is one of allowed, substitutes def when raw is
// empty, and records a validation failure otherwise
func parseEnum[T ~string](v *validator, field, raw string, def T, allowed ...T) T {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		if def == "" {
			v.fail(field, "", "is required")
		}
		return def
	}
	for _, candidate := range allowed {
		if string(candidate) == value {
			return candidate
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	v.fail(field, raw, fmt.Sprintf("must be one of %s", strings.Join(names, ", ")))
	return def
}

func boolOr(value *bool, def bool) bool {
	if value == nil {
		return def
	}
	return *value
}
