package core

// BinaryType classifies the architecture/format of a candidate executable
type BinaryType string

const (
	BinaryNone           BinaryType = "none"
	BinaryELF            BinaryType = "elf"
	BinaryMachO          BinaryType = "macho"
	BinaryMachOUniversal BinaryType = "macho-universal"
	BinaryPE             BinaryType = "pe"
)

// VersionInfo holds the identity metadata extracted from an application
// manifest. Unknown fields are empty strings, never absent.
type VersionInfo struct {
	ProductName     string     `json:"product_name"`
	ProductVersion  string     `json:"product_version"`
	CompanyName     string     `json:"company_name,omitempty"`
	FileDescription string     `json:"file_description,omitempty"`
	BinaryType      BinaryType `json:"binary_type"`
}

// BrowserCandidate represents one discovered browser-capable application.
// It is constructed once per successful extraction and immutable afterwards.
type BrowserCandidate struct {
	// ExePath is the absolute, argument-free path to the launchable binary.
	// Path syntax is always well-formed; existence is tracked in ExeExists.
	ExePath string `json:"exe_path"`

	// Arguments are prepended at launch, before the URL (empty by default)
	Arguments []string `json:"arguments,omitempty"`

	// DisplayName is the human-readable program name from the manifest,
	// never empty after successful extraction
	DisplayName string `json:"display_name"`

	Version VersionInfo `json:"version"`

	// IconPath points at the platform icon resource; resolved lazily
	IconPath string `json:"icon_path,omitempty"`

	// Recorded at extraction time so the UI can gray out broken entries.
	// A momentarily absent executable never fails extraction.
	ExeExists    bool `json:"exe_exists"`
	IconResolved bool `json:"icon_resolved"`
}

// Scan stage names used to tag diagnostics
const (
	StageRoot    = "root"
	StageRead    = "read"
	StageFilter  = "filter"
	StageExtract = "extract"
)

// ScanDiagnostic is a non-fatal issue recorded during scanning. Diagnostics
// are surfaced to logs and never block result delivery.
type ScanDiagnostic struct {
	Path    string `json:"path"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Exit codes
const (
	ExitSuccess      = 0
	ExitGeneral      = 1
	ExitInvalidArgs  = 2
	ExitLaunchFailed = 3
	ExitInterrupted  = 130
)
