package uversion

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"slices"
	"time"

	"github.com/google/uuid"
)

// GitCommit and GitTag are expected to be set at build time via
// -ldflags "-X github.com/ivanobilenchi/gulib/uversion.GitCommit=...".
var (
	GitCommit string
	GitTag    string
)

// SessionID uniquely identifies this process's run, for correlating log
// lines and benchmark output across invocations.
var SessionID = uuid.New().String() + ":" + time.Now().Format("20060102T150405")

// relevantSettings are the debug.BuildInfo setting keys worth surfacing
// in version output; the rest (hundreds of build flags) are noise.
var relevantSettings = []string{
	"-compiler",
	"GOARCH",
	"GOOS",
	"GOAMD64",
	"vcs",
	"vcs.revision",
	"vcs.time",
	"vcs.modified",
}

// BuildInfo snapshots everything a version command needs to print:
// library version, build-time tag/commit, session ID, and the Go
// toolchain/runtime facts relevant to reproducing a bug report.
type BuildInfo struct {
	Library   Version           `json:"library"`
	GitTag    string            `json:"git_tag,omitempty"`
	GitCommit string            `json:"git_commit,omitempty"`
	SessionID string            `json:"session_id"`
	GoVersion string            `json:"go_version"`
	NumCPU    int               `json:"num_cpu"`
	Settings  map[string]string `json:"settings,omitempty"`
}

// Collect gathers a BuildInfo snapshot for the currently-running binary.
func Collect() BuildInfo {
	info := BuildInfo{
		Library:   Library,
		GitTag:    GitTag,
		GitCommit: GitCommit,
		SessionID: SessionID,
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Settings = make(map[string]string)
		for _, setting := range bi.Settings {
			if slices.Contains(relevantSettings, setting.Key) {
				info.Settings[setting.Key] = setting.Value
			}
		}
	}
	return info
}

// Fprint writes a human-readable rendering of info to w.
func (info BuildInfo) Fprint(w io.Writer) {
	fmt.Fprintf(w, "gulib %s\n", info.Library)
	if info.GitTag != "" || info.GitCommit != "" {
		fmt.Fprintf(w, "Tag/Branch: %s\n", info.GitTag)
		fmt.Fprintf(w, "Commit: %s\n", info.GitCommit)
	}
	if len(info.Settings) > 0 {
		fmt.Fprintln(w, "Build settings:")
		for _, key := range relevantSettings {
			if val, ok := info.Settings[key]; ok {
				fmt.Fprintf(w, "  %s: %s\n", key, val)
			}
		}
	}
	fmt.Fprintf(w, "Session: %s\n", info.SessionID)
	fmt.Fprintf(w, "Go version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "Num CPU: %d\n", info.NumCPU)
}

// JSON renders info as a JSON object.
func (info BuildInfo) JSON() ([]byte, error) {
	return json.Marshal(info)
}
