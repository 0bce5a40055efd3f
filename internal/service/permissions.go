package service

// Capability names used by route guards.
const (
	PermReadAtor  = "read_ator"
	PermWriteAtor = "write_ator"
)

// permissionPolicy maps each capability to the user groups that hold it.
// Group 1 is administration; 3, 10 and 13 are the clinical/school profiles
// carried over from the legacy user module.
var permissionPolicy = map[string][]int{
	PermReadAtor:  {1, 3, 10, 13},
	PermWriteAtor: {1},
}

// GruposPermitidos returns the user groups holding the given capability.
// Unknown capabilities return nil, which denies everyone.
func GruposPermitidos(permissao string) []int {
	return permissionPolicy[permissao]
}
