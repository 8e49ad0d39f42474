package configloader

import "github.com/yaklabco/pystylecheck/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Booleans: a true override wins; false cannot unset a lower layer
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.RuleFormat != "" {
		result.RuleFormat = override.RuleFormat
	}
	if override.SummaryOrder != "" {
		result.SummaryOrder = override.SummaryOrder
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.FollowSymlinks {
		result.FollowSymlinks = true
	}
	if override.DetectShebang {
		result.DetectShebang = true
	}
	if override.SkipVendored {
		result.SkipVendored = true
	}
	if override.Summary {
		result.Summary = true
	}
	if override.Strict {
		result.Strict = true
	}

	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
