// Package browser opens the served test page in the default browser.
//
// The Launcher runs a single detached worker: it sleeps for the configured
// delay, announces the URL and hands it to an Opener. SystemOpener delegates
// to github.com/pkg/browser. Failures are logged and never reach the server.
package browser
