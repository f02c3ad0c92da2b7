// girderctl runs highway bridge plate girder verifications from the
// command line, without the HTTP service.
package main

import "Girder/cmd/girderctl/cmd"

func main() {
	cmd.Execute()
}
