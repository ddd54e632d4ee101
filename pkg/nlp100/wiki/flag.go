package wiki

import (
	"context"
	"log/slog"
	"strings"
)

// FlagImageKey is the infobox field holding the flag file name.
const FlagImageKey = "国旗画像"

// ImageResolver turns a file name into a downloadable URL.
type ImageResolver interface {
	ImageURL(ctx context.Context, fileName string) (string, error)
}

// CountryFlagURL resolves the flag image named in info. It reports false when
// the field is missing or the lookup fails; failures are logged, not returned.
func CountryFlagURL(ctx context.Context, info BasicInfo, resolver ImageResolver) (string, bool) {
	name, ok := info[FlagImageKey]
	if !ok || strings.TrimSpace(name) == "" || resolver == nil {
		return "", false
	}
	url, err := resolver.ImageURL(ctx, strings.TrimSpace(name))
	if err != nil {
		slog.Warn("flag image lookup failed", "file", name, "error", err)
		return "", false
	}
	return url, true
}
