package minecraft

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Loader names recognised in launcher version IDs.
const (
	LoaderForge    = "forge"
	LoaderNeoForge = "neoforge"
	LoaderFabric   = "fabric"
	LoaderQuilt    = "quilt"
)

// VersionID is a parsed launcher "lastVersionId" such as "1.14.4-forge-28.1.106".
type VersionID struct {
	// Raw is the string as found in the profile.
	Raw string

	// Game is the Minecraft version, or nil for snapshots, old alpha/beta
	// versions and IDs like "latest-release".
	Game *semver.Version

	// Loader is the mod loader name in lower case, empty for vanilla.
	Loader string

	// LoaderVersion is the loader's own version string.
	LoaderVersion string
}

// GameVersion returns the Minecraft version as a string, or "" if unknown.
func (v VersionID) GameVersion() string {
	if v.Game == nil {
		return ""
	}
	return v.Game.Original()
}

// ParseVersionID splits a launcher version ID into game version and loader.
// It understands the formats written by the Forge, NeoForge, Fabric and Quilt
// installers as well as plain release IDs. Anything else is returned with
// only Raw set.
//
// Examples:
//
//	1.14.4-forge-28.1.106          -> game 1.14.4, forge 28.1.106
//	1.12.2-forge1.12.2-14.23.5.2847 -> game 1.12.2, forge 14.23.5.2847
//	fabric-loader-0.15.7-1.20.4    -> game 1.20.4, fabric 0.15.7
//	neoforge-20.4.80-beta          -> neoforge 20.4.80-beta
//	1.20.4-pre1                    -> game 1.20.4-pre1
func ParseVersionID(raw string) VersionID {
	v := VersionID{Raw: raw}

	if loader, rest, ok := strings.Cut(raw, "-loader-"); ok {
		v.Loader = strings.ToLower(loader)
		if i := strings.LastIndex(rest, "-"); i >= 0 {
			v.LoaderVersion = rest[:i]
			v.Game = parseGameVersion(rest[i+1:])
		} else {
			v.LoaderVersion = rest
		}
		return v
	}

	head, rest, found := strings.Cut(raw, "-")
	v.Game = parseGameVersion(head)

	if v.Game == nil {
		// neoforge-20.4.80-beta carries no game version
		if found && strings.EqualFold(head, LoaderNeoForge) {
			v.Loader = LoaderNeoForge
			v.LoaderVersion = rest
		}
		return v
	}

	if !found {
		return v
	}

	if isPrerelease(rest) {
		v.Game = parseGameVersion(raw)
		return v
	}

	loader, loaderVersion, _ := strings.Cut(rest, "-")
	loader = strings.ToLower(loader)

	// Older Forge IDs glue a version onto the loader name, either the game
	// version (forge1.12.2-14.23.5.2847) or the loader version
	// (Forge10.13.4.1614-1.7.10).
	for _, name := range []string{LoaderNeoForge, LoaderForge} {
		suffix, ok := strings.CutPrefix(loader, name)
		if !ok || suffix == "" {
			continue
		}
		loader = name
		if suffix != head {
			loaderVersion = suffix
		}
		break
	}

	v.Loader = loader
	v.LoaderVersion = loaderVersion

	return v
}

// CompareVersionIDs orders two version IDs by game version, then loader
// version. IDs without a game version sort before those with one, and
// anything semver cannot order falls back to comparing Raw.
func CompareVersionIDs(a, b VersionID) int {
	switch {
	case a.Game != nil && b.Game != nil:
		if c := a.Game.Compare(b.Game); c != 0 {
			return c
		}
	case a.Game != nil:
		return 1
	case b.Game != nil:
		return -1
	}

	if a.Loader != b.Loader {
		return strings.Compare(a.Loader, b.Loader)
	}

	av, aErr := semver.NewVersion(a.LoaderVersion)
	bv, bErr := semver.NewVersion(b.LoaderVersion)
	if aErr == nil && bErr == nil {
		if c := av.Compare(bv); c != 0 {
			return c
		}
	}

	return strings.Compare(a.Raw, b.Raw)
}

// parseGameVersion accepts release-style versions ("1.20", "1.20.4") and
// rejects snapshots ("23w45a") and named IDs ("latest-release").
func parseGameVersion(s string) *semver.Version {
	if s == "" || s[0] < '0' || s[0] > '9' || !strings.Contains(s, ".") {
		return nil
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil
	}
	return v
}

func isPrerelease(s string) bool {
	return strings.HasPrefix(s, "pre") || strings.HasPrefix(s, "rc")
}
