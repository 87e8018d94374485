package config

import "path/filepath"

// skinCacheShardLen is the length of the directory-sharding prefix
// taken from the front of a texture hash.
const skinCacheShardLen = 2

// SkinCachePath returns the relative on-disk path a cached skin
// texture for the given (lowercase hex) texture hash would live at: a
// two-character shard directory followed by the full hash, matching
// the hashed-blob layout Mojang's own texture CDN uses. This package
// only computes the path; downloading and writing the file is the
// skin-download worker's job, out of scope here. Hashes shorter than
// the shard length are placed in a "short" bucket rather than panicking.
func SkinCachePath(hash string) string {
	shard := "short"
	if len(hash) >= skinCacheShardLen {
		shard = hash[:skinCacheShardLen]
	}
	return filepath.Join("skin-cache", shard, hash+".png")
}
