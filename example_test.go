package dfprop_test

import (
	"fmt"

	dfprop "github.com/0xalexb/hjarta-dfprop"
	"github.com/0xalexb/hjarta-dfprop/groups"

	"go.uber.org/fx"
)

// EntityNamer is a generator component that depends on resolved properties.
type EntityNamer struct {
	Props *groups.Properties
}

// EntityPackage returns the package of the extended entity for table.
func (n *EntityNamer) EntityPackage() string {
	return n.Props.BasicInfo.ExtendedEntityPackage()
}

// Example_appWithProperties demonstrates resolving properties into an Fx
// application and injecting them into a generator component.
func Example_appWithProperties() {
	generatorModule := fx.Module("generator",
		fx.Provide(func(props *groups.Properties) *EntityNamer {
			return &EntityNamer{Props: props}
		}),
	)

	var namer *EntityNamer

	invokeModule := fx.Module("invoke",
		fx.Invoke(func(n *EntityNamer) {
			namer = n
		}),
	)

	app := dfprop.NewApp(
		dfprop.WithLogLevel("error"),
		dfprop.WithDirectory("testdata/dfprop"),
		dfprop.WithEnvironment("ut"),
		dfprop.WithModules(generatorModule, invokeModule),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	fmt.Printf("Entity package: %s\n", namer.EntityPackage())
	fmt.Printf("Driver: %s\n", namer.Props.DatabaseInfo.Driver)
	fmt.Printf("Common columns: %v\n", namer.Props.CommonColumn.ColumnNames())
	// Output:
	// Entity package: org.docksidestage.dbflute.exentity
	// Driver: org.h2.Driver
	// Common columns: [REGISTER_DATETIME REGISTER_USER UPDATE_DATETIME UPDATE_USER]
}

func ExampleLoad() {
	props, err := dfprop.Load(
		dfprop.WithLogLevel("error"),
		dfprop.WithDirectory("testdata/single"),
		dfprop.WithDocument("dfprop"),
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Project: %s on %s\n", props.BasicInfo.Project, props.BasicInfo.Database)
	// Output:
	// Project: maihamadb on h2
}
