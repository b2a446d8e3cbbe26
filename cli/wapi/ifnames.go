package main

import (
	"github.com/sagernet/sing-wireless/wireless"

	"github.com/spf13/cobra"
)

type interfaceObject struct {
	Name         string `json:"name"`
	Index        int    `json:"index,omitempty"`
	MTU          int    `json:"mtu,omitempty"`
	HardwareAddr string `json:"hardware_address,omitempty"`
	OperState    string `json:"oper_state,omitempty"`
}

func newIfnamesCommand(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "ifnames",
		Short: "List wireless interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := wireless.ListInterfaces()
			if err != nil {
				return err
			}
			objects := make([]interfaceObject, 0, len(names))
			for _, name := range names {
				object := interfaceObject{Name: name}
				err = fillLinkInfo(&object)
				if err != nil {
					logger.Debug("link info of ", name, ": ", err)
				}
				objects = append(objects, object)
			}
			if options.JSON {
				return writeJSON(cmd.OutOrStdout(), objects)
			}
			table := newTable(cmd.OutOrStdout(), "Name", "Index", "MTU", "Address", "State")
			for _, object := range objects {
				table.Append([]string{object.Name, formatOptionalInt(object.Index), formatOptionalInt(object.MTU), object.HardwareAddr, object.OperState})
			}
			table.Render()
			return nil
		},
	}
}
