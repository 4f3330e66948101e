// Package main orchestrates code generation for the goodmem server.
// Run via: go generate ./...
// It installs a pinned protoc plus the Go protoc plugins into bin/ and
// regenerates the gRPC stubs under internal/generated/pb.
package main

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

const protocVersion = "34.0"

func main() {
	root := findProjectRoot()

	installTools(root)
	generateGRPC(root)

	fmt.Println("Formatting generated Go code...")
	run("gofmt", "-w", filepath.Join(root, "internal", "generated"))

	fmt.Println("Code generation complete.")
}

func installTools(root string) {
	fmt.Println("Ensuring codegen tools are installed...")
	binDir := filepath.Join(root, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create bin dir: %v\n", err)
		os.Exit(1)
	}
	// Build protoc plugins into bin/ so protoc can find them via --plugin flags.
	run("go", "build", "-o", filepath.Join(binDir, "protoc-gen-go"), "google.golang.org/protobuf/cmd/protoc-gen-go")
	run("go", "build", "-o", filepath.Join(binDir, "protoc-gen-go-grpc"), "google.golang.org/grpc/cmd/protoc-gen-go-grpc")
	installProtoc(root)
}

func installProtoc(root string) {
	binDir := filepath.Join(root, "bin")
	protocBin := filepath.Join(binDir, "protoc")

	if isProtocVersionInstalled(protocBin, protocVersion) {
		fmt.Printf("protoc %s already installed.\n", protocVersion)
		return
	}

	fmt.Printf("Installing protoc %s to %s...\n", protocVersion, binDir)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create bin dir: %v\n", err)
		os.Exit(1)
	}

	url := protocDownloadURL(protocVersion)
	fmt.Printf("Downloading %s...\n", url)
	downloadAndExtractProtoc(url, binDir)
	fmt.Printf("protoc %s installed to %s\n", protocVersion, protocBin)
}

func isProtocVersionInstalled(protocBin, version string) bool {
	if _, err := os.Stat(protocBin); os.IsNotExist(err) {
		return false
	}
	out, err := exec.Command(protocBin, "--version").Output()
	if err != nil {
		return false
	}
	return strings.Contains(string(out), version)
}

func protocDownloadURL(version string) string {
	var osName, arch string
	switch runtime.GOOS {
	case "darwin":
		osName = "osx"
	case "linux":
		osName = "linux"
	default:
		fmt.Fprintf(os.Stderr, "unsupported OS for protoc install: %s\n", runtime.GOOS)
		os.Exit(1)
	}
	switch runtime.GOARCH {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch_64"
	default:
		fmt.Fprintf(os.Stderr, "unsupported arch for protoc install: %s\n", runtime.GOARCH)
		os.Exit(1)
	}
	return fmt.Sprintf(
		"https://github.com/protocolbuffers/protobuf/releases/download/v%s/protoc-%s-%s-%s.zip",
		version, version, osName, arch,
	)
}

// downloadAndExtractProtoc downloads the protoc zip and extracts:
//   - bin/protoc      → binDir/protoc
//   - include/...     → binDir/include/... (well-known proto types)
func downloadAndExtractProtoc(url, binDir string) {
	resp, err := http.Get(url) //nolint:gosec // URL is constructed from a pinned const
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to download protoc: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "failed to download protoc: HTTP %d\n", resp.StatusCode)
		os.Exit(1)
	}

	tmp, err := os.CreateTemp("", "protoc-*.zip")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp file: %v\n", err)
		os.Exit(1)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write protoc zip: %v\n", err)
		os.Exit(1)
	}
	tmp.Close()

	zr, err := zip.OpenReader(tmp.Name())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open protoc zip: %v\n", err)
		os.Exit(1)
	}
	defer zr.Close()

	gotProtoc := false
	for _, f := range zr.File {
		var destPath string
		switch {
		case f.Name == "bin/protoc":
			destPath = filepath.Join(binDir, "protoc")
		case strings.HasPrefix(f.Name, "include/") && !f.FileInfo().IsDir():
			// e.g. include/google/protobuf/empty.proto → binDir/include/google/protobuf/empty.proto
			destPath = filepath.Join(binDir, filepath.FromSlash(f.Name))
		default:
			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create dir for %s: %v\n", destPath, err)
			os.Exit(1)
		}

		rc, err := f.Open()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open %s in zip: %v\n", f.Name, err)
			os.Exit(1)
		}

		perm := os.FileMode(0o644)
		if f.Name == "bin/protoc" {
			perm = 0o755
			gotProtoc = true
		}
		out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
		if err != nil {
			rc.Close()
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", destPath, err)
			os.Exit(1)
		}
		_, copyErr := io.Copy(out, rc)
		rc.Close()
		out.Close()
		if copyErr != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", destPath, copyErr)
			os.Exit(1)
		}
	}

	if !gotProtoc {
		fmt.Fprintf(os.Stderr, "bin/protoc not found in downloaded zip\n")
		os.Exit(1)
	}
}

func generateGRPC(root string) {
	protoDir := filepath.Join(root, "proto")
	pbOut := filepath.Join(root, "internal", "generated", "pb")
	os.MkdirAll(pbOut, 0o755)

	binDir := filepath.Join(root, "bin")
	protocBin := filepath.Join(binDir, "protoc")
	wellKnownIncludes := filepath.Join(binDir, "include")

	protoFiles, err := filepath.Glob(filepath.Join(protoDir, "goodmem", "v1", "*.proto"))
	if err != nil || len(protoFiles) == 0 {
		fmt.Fprintf(os.Stderr, "no proto files found under %s: %v\n", protoDir, err)
		os.Exit(1)
	}
	sort.Strings(protoFiles)

	fmt.Println("Generating gRPC stubs...")
	args := []string{
		"--proto_path=" + protoDir,
		"--proto_path=" + wellKnownIncludes,
		"--plugin=protoc-gen-go=" + filepath.Join(binDir, "protoc-gen-go"),
		"--plugin=protoc-gen-go-grpc=" + filepath.Join(binDir, "protoc-gen-go-grpc"),
		"--go_out=" + pbOut, "--go_opt=paths=source_relative",
		"--go-grpc_out=" + pbOut, "--go-grpc_opt=paths=source_relative",
	}
	args = append(args, protoFiles...)
	run(protocBin, args...)
}

func run(name string, args ...string) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "command failed: %s %v: %v\n", name, args, err)
		os.Exit(1)
	}
}

func findProjectRoot() string {
	// Walk up from the working directory to find go.mod
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot get working directory: %v\n", err)
		os.Exit(1)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			fmt.Fprintf(os.Stderr, "cannot find project root (go.mod)\n")
			os.Exit(1)
		}
		dir = parent
	}
}
