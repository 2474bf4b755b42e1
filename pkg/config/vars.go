package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "hgnckb"

	// HGNCDownloadURL is the default custom download endpoint of HGNC.
	HGNCDownloadURL = "https://www.genenames.org/cgi-bin/download/custom?"

	// HGNCColumns are the columns requested from HGNC, in the order the
	// entries file keeps them.
	HGNCColumns = []string{
		"gd_hgnc_id", "gd_app_sym", "gd_app_name", "gd_status",
		"gd_aliases", "gd_prev_sym", "md_prot_id",
	}

	// HGNCStatuses restrict the download to genes with these statuses.
	HGNCStatuses = []string{"Approved"}

	// HGNCParams are the fixed parameters of the download request.
	HGNCParams = []string{
		"hgnc_dbtag=on",
		"order_by=gd_app_sym_sort",
		"format=text",
		"submit=submit",
	}
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/hgnckb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/hgnckb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/hgnckb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
