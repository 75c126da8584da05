package main

import "runtime/debug"

// version can be set via ldflags: -ldflags "-X main.version=v1.0.0".
// When unset, getVersion falls back to module build info.
var version = ""

func getVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}

	return "dev"
}
