package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"nextkey_landing_go/services"
	"nextkey_landing_go/services/leadapi"
	"nextkey_landing_go/services/leadform"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type submitArgs struct {
	form   string
	origin string
	values map[string]*string
}

func createSubmitCmd(v *viper.Viper) *cobra.Command {
	args := submitArgs{values: map[string]*string{}}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate and send one lead to the lead intake API",
		Example: `  leadctl submit --form parent --name "Jane Doe" --email jane@example.com \
    --phone 5551234567 --state Texas --description "Unknown adult messaging my son"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSubmit(cmd, v, args)
		},
	}

	cmd.Flags().StringVarP(&args.form, "form", "f", leadform.ParentFields.Key, "intake form: parent or child")
	cmd.Flags().StringVar(&args.origin, "origin", "localhost", "original_domain sent with the lead")
	for flag, field := range map[string]string{
		"name":        leadform.FieldName,
		"email":       leadform.FieldEmail,
		"phone":       leadform.FieldPhone,
		"state":       leadform.FieldStateLocation,
		"description": leadform.FieldDescription,
	} {
		args.values[field] = cmd.Flags().String(flag, "", field+" value")
	}

	return cmd
}

func runSubmit(cmd *cobra.Command, v *viper.Viper, args submitArgs) error {
	fs, ok := leadform.FieldSetFor(args.form)
	if !ok {
		return formattedError("unknown form %q, expected parent or child", args.form)
	}

	form := leadform.NewForm(fs)
	for _, f := range fs.Fields {
		if _, err := form.Edit(f.Name, *args.values[f.Name]); err != nil {
			return err
		}
	}

	if errs := form.Validate(); errs.Any() {
		var invalid []string
		for name, bad := range errs {
			if bad {
				invalid = append(invalid, name)
			}
		}
		sort.Strings(invalid)
		return formattedError("invalid fields: %s", strings.Join(invalid, ", "))
	}

	client := leadapi.NewClient(v.GetString(keyAPIURL), v.GetDuration(keyTimeout), nil)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Posting %s lead to %s\n", fs.Source, bold(client.Endpoint()))

	res, err := client.Submit(cmd.Context(), form.Submission(args.origin))
	var rejected *leadapi.RejectedError
	switch {
	case err == nil:
		fmt.Fprintln(out, green(fmt.Sprintf("Lead accepted (HTTP %d)", res.StatusCode)))
		return nil
	case errors.As(err, &rejected):
		return formattedError("lead rejected (HTTP %d): %s", rejected.StatusCode, rejected.Message())
	case errors.Is(err, leadapi.ErrUnreachable):
		return formattedError("%s", services.MsgUnreachable)
	default:
		return err
	}
}

func createMaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mask <input>",
		Short: "Print the phone mask the parent form applies to an input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), leadform.FormatPhone(args[0]))
			return nil
		},
	}
}
