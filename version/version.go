// Package version - Versionsinformationen fuer Resona
package version

var Version string = "0.0.0"
