package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harrison/lsf/internal/models"
)

// sortValue is a boolean flag that selects a sort key. Several of them share
// one key, so the one given last on the command line wins.
type sortValue struct {
	key *models.SortKey
	to  models.SortKey
}

func sortFlag(cmd *cobra.Command, key *models.SortKey, name, short string, to models.SortKey, usage string) {
	f := cmd.Flags().VarPF(&sortValue{key: key, to: to}, name, short, usage)
	f.NoOptDefVal = "true"
}

func (v *sortValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	switch {
	case on:
		*v.key = v.to
	case *v.key == v.to:
		*v.key = models.SortByName
	}
	return nil
}

func (v *sortValue) String() string {
	return strconv.FormatBool(v.key != nil && *v.key == v.to)
}

func (v *sortValue) Type() string {
	return "bool"
}
