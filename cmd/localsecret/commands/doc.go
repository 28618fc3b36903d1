// Package commands defines the localsecret CLI.
//
// The tool takes a secret (a file via --secret-file, or piped standard
// input), serves it on an ephemeral local HTTP port under a randomly
// generated URL prefix, prints the resulting URL as the first line on
// stdout, and exits once the share's use or failure budget is spent.
//
// Flags
//
//	-s, --secret-file          the secret file to share
//	-u, --url-prefix-length    length of the random url prefix (default 42)
//	    --uses                 how often the url can be used (default 1)
//	    --failed-attempts      invalid requests tolerated before aborting
//	                           (default 3; 0 is discouraged, a browser's
//	                           favicon probe would end the share at once)
//	    --bind-ip              address to bind (default: auto-discovered)
//	    --qr                   also print the url as a terminal qr code
//
// Exit status is 0 after a graceful, exhaustion-triggered shutdown or an
// operator interrupt, and 1 on configuration or bind errors.
package commands
