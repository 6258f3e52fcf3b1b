// Package juicer invokes the content-extraction engine on staged bundles.
//
// The juicer is an external container image that receives the bundle
// directory as its working volume and the bundle identifier in the DID
// environment variable. It derives fragments (plaintext, preview) straight
// into the directory and reports success solely through a zero exit status.
// The engine runs with networking disabled; papervault treats it as a black
// box and captures its combined output as the juicer.log fragment.
package juicer
