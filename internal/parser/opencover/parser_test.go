package opencover

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/filesystem"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/parser"
)

func TestOpenCoverParser_SupportsFile(t *testing.T) {
	testCases := []struct {
		name     string
		file     string
		expected bool
	}{
		{"OpenCover report", "opencover.xml", true},
		{"Cobertura report", "cobertura.xml", false},
		{"Missing file", "missing.xml", false},
	}

	p := NewOpenCoverParser()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, p.SupportsFile(filesystem.DefaultFS{}, filepath.Join("testdata", tc.file)))
		})
	}
}

func TestOpenCoverParser_Parse(t *testing.T) {
	session, err := NewOpenCoverParser().Parse(filesystem.DefaultFS{}, filepath.Join("testdata", "opencover.xml"))
	require.NoError(t, err)

	require.Len(t, session.Modules.Module, 2)
	skipped, module := session.Modules.Module[0], session.Modules.Module[1]
	assert.True(t, skipped.IsSkipped())
	assert.False(t, module.IsSkipped())
	assert.Equal(t, "Test", module.ModuleName)

	require.Len(t, module.Files.File, 2)
	assert.Equal(t, "2", module.Files.File[1].UID)
	assert.Equal(t, `C:\temp\Test\Models\Person.cs`, module.Files.File[1].FullPath)

	require.Len(t, module.Classes.Class, 2)
	program := module.Classes.Class[0]
	assert.Equal(t, "Test.Program", program.FullName)
	assert.True(t, module.Classes.Class[1].IsSkipped())

	require.Len(t, program.Methods.Method, 2)
	mainMethod := program.Methods.Method[0]
	assert.Equal(t, "System.Void Test.Program::Main(System.String[])", mainMethod.Name)
	require.True(t, mainMethod.HasFileRef())
	assert.Equal(t, "1", mainMethod.FileRef.UID)
	require.Len(t, mainMethod.SequencePoints.SequencePoint, 2)
	assert.Equal(t, "11", mainMethod.SequencePoints.SequencePoint[1].StartLine)
	require.Len(t, mainMethod.BranchPoints.BranchPoint, 2)
	assert.Equal(t, "0", mainMethod.BranchPoints.BranchPoint[1].VisitCount)
	assert.False(t, mainMethod.IsAccessor())
	assert.True(t, program.Methods.Method[1].IsAccessor())
}

func TestOpenCoverParser_ParseErrors(t *testing.T) {
	p := NewOpenCoverParser()

	_, err := p.Parse(filesystem.DefaultFS{}, filepath.Join("testdata", "missing.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")

	_, err = p.Parse(filesystem.DefaultFS{}, filepath.Join("testdata", "cobertura.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal OpenCover XML")
}

func TestFindParserForFile(t *testing.T) {
	found, err := parser.FindParserForFile(filesystem.DefaultFS{}, filepath.Join("testdata", "opencover.xml"))
	require.NoError(t, err)
	assert.Equal(t, "OpenCover", found.Name())

	_, err = parser.FindParserForFile(filesystem.DefaultFS{}, filepath.Join("testdata", "cobertura.xml"))
	assert.ErrorIs(t, err, parser.ErrUnsupportedReport)
}
