/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: version.go
Description: Protocol version for the Concept client. The version string is
handed to the Concept process at startup so the server can refuse mismatched
clients.
*/

package protocol

// Version is the API protocol version string, matching the Concept release
// the client was built against.
const Version = "8.2.0"
