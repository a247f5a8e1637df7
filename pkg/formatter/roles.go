package formatter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/helmcode/skillready/pkg/taxonomy"
)

// DisplayRoles renders role profiles. Human output lists each role's
// requirements grouped in declaration order.
func DisplayRoles(w io.Writer, roles []taxonomy.RoleProfile, format string) error {
	switch format {
	case "json":
		return displayJSON(w, roles)
	case "yaml":
		return displayYAML(w, taxonomy.File{Roles: roles})
	default:
		displayRolesHuman(w, roles)
	}
	return nil
}

func displayRolesHuman(w io.Writer, roles []taxonomy.RoleProfile) {
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	for _, role := range roles {
		cyan.Fprintf(w, "📂 %s", role.Key)
		fmt.Fprintf(w, " (%d skills)\n", len(role.Requirements))
		for _, r := range role.Requirements {
			fmt.Fprintf(w, "   %s %-45s %s\n", getImportanceIcon(r.Importance), r.Name, color.HiBlackString(string(r.Category)))
		}
		if role.Alternative != nil {
			fmt.Fprintf(w, "   ↪ Alternative: %s\n", role.Alternative.Role)
		}
		fmt.Fprintln(w)
	}
}
