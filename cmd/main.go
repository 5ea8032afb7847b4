// Main package for the resload command line tool
/*
resload
Reads a named resource, creating it with a default payload when missing.

Usage:
  resload [command]

Available Commands:
  load        Print a resource, creating it if missing
  conf        Print the effective config
  version     Version information
  help        Help about any command

Flags:
  -h, --help            help for resload
      --path string     path to config files (default "./config")
      --config string   config file name (default from GO_ENV)
      --set strings     override a config value, eg. RL_CREATE_DIRS=true

Use "resload [command] --help" for more information about a command.
*/

package main

func main() {
	Cmd()
}
