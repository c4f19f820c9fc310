package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// StaticAssets are the files under the static root whose URLs carry a version
var StaticAssets = []string{
	"css/style.css",
	"img/favicon.svg",
	"img/arrowUpRight.svg",
}

var (
	assetVersions   = map[string]string{}
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticRoot string, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	versions := make(map[string]string, len(StaticAssets))
	for _, name := range StaticAssets {
		v, err := computeFileHash(filepath.Join(staticRoot, name))
		if err != nil {
			logger.Warn("asset not hashed", zap.String("asset", name), zap.Error(err))
			continue
		}
		versions[name] = v
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	logger.Info("asset versions initialized", zap.Int("assets", len(versions)))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil))[:8], nil
}

// AssetVersion returns the version hash of a static asset, "1" when unknown.
// ctx keeps the signature in line with GetNonce for use inside components.
func AssetVersion(ctx context.Context, name string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if v, ok := assetVersions[name]; ok {
		return v
	}
	return "1"
}

// AssetURL is the public URL of a static asset with its cache-busting query
func AssetURL(ctx context.Context, name string) string {
	return "/static/" + name + "?v=" + AssetVersion(ctx, name)
}
