// Package testsupport holds helpers shared by tubetag tests: temp-dir
// configs, input files and a ready history database.
package testsupport
