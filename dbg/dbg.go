package dbg

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/davecgh/go-spew/spew"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uistyle"
	"github.com/npillmayer/uistyle/style"
	"github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	PropsTmpl *template.Template
	PedgeTmpl *template.Template
}

// ToGraphViz outputs a diagram of the node tree of m, starting at the root.
// The diagram is in GraphViz (DOT) format. Nodes carrying properties are
// connected to a table listing them.
func ToGraphViz(m *uistyle.Manager, w io.Writer) error {
	tmpl, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.PropsTmpl = template.Must(template.New("props").Parse(propsTmpl))
	gparams.PedgeTmpl = template.Must(template.New("pedge").Parse(pedgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[uistyle.NodeID]string, 256)
	if err = nodes(m, m.Root(), w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a manager and a testing.T, it will
// create a Graphviz image of the node tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(m *uistyle.Manager, t *testing.T) {
	tmpfile, err := ioutil.TempFile(".", "uistyle.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing node digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(m, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	Name   string
	Label  string
	IsText bool
	Rect   style.Rect
	Layout string
}

type edge struct {
	N1, N2 string
}

type props struct {
	Name       string
	Properties []prop
}

type prop struct {
	Key, Value string
}

func nodes(m *uistyle.Manager, id uistyle.NodeID, w io.Writer, dict map[uistyle.NodeID]string,
	gparams *graphParamsType) error {
	//
	name := nodeName(id, dict)
	n := node{Name: name, Rect: m.RawPosition(id), Layout: m.LayoutEngine(id)}
	if text, ok := m.Text(id); ok {
		n.IsText, n.Label = true, text
	} else {
		n.Label, _ = m.Name(id)
	}
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		return err
	}
	if ps := sortedProperties(m.Properties(id)); len(ps) > 0 {
		if err := gparams.PropsTmpl.Execute(w, props{Name: name, Properties: ps}); err != nil {
			return err
		}
		if err := gparams.PedgeTmpl.Execute(w, name); err != nil {
			return err
		}
	}
	for _, ch := range m.Children(id) {
		if err := nodes(m, ch, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, dict[ch]}); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(id uistyle.NodeID, dict map[uistyle.NodeID]string) string {
	name := dict[id]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[id] = name
	}
	return name
}

func sortedProperties(p style.Properties) []prop {
	ps := make([]prop, 0, len(p))
	for _, k := range p.Keys() {
		ps = append(ps, prop{Key: k, Value: p[k].String()})
	}
	return ps
}

func shortText(s string) string {
	q := "\"\\\""
	if len(s) > 10 {
		q += s[:10] + "...\\\"\""
	} else {
		q += s + "\\\"\""
	}
	q = strings.Replace(q, "\n", `\\n`, -1)
	q = strings.Replace(q, "\t", `\\t`, -1)
	q = strings.Replace(q, " ", "␣", -1)
	return q
}

// --- Text dumps -------------------------------------------------------

// Dump renders the node tree of m as indented text, one node per line.
func Dump(m *uistyle.Manager) string {
	p := treeprint.New()
	root := p.AddBranch(describe(m, m.Root()))
	dumpChildren(m, m.Root(), root)
	return p.String()
}

func dumpChildren(m *uistyle.Manager, id uistyle.NodeID, p treeprint.Tree) {
	for _, ch := range m.Children(id) {
		if len(m.Children(ch)) == 0 {
			p.AddNode(describe(m, ch))
			continue
		}
		branch := p.AddBranch(describe(m, ch))
		dumpChildren(m, ch, branch)
	}
}

func describe(m *uistyle.Manager, id uistyle.NodeID) string {
	var label string
	if text, ok := m.Text(id); ok {
		label = fmt.Sprintf("%q", text)
	} else {
		label, _ = m.Name(id)
		if ps := sortedProperties(m.Properties(id)); len(ps) > 0 {
			kv := make([]string, len(ps))
			for i, p := range ps {
				kv[i] = p.Key + "=" + p.Value
			}
			label += "(" + strings.Join(kv, ",") + ")"
		}
	}
	s := fmt.Sprintf("%s %s", label, m.RawPosition(id))
	if !m.IsText(id) {
		s += " " + m.LayoutEngine(id)
	}
	if x, y := m.ScrollPosition(id); x != 0 || y != 0 {
		s += fmt.Sprintf(" scroll(%g,%g)", x, y)
	}
	if m.ClipOverflow(id) {
		s += " clip"
	}
	return s
}

// DumpValue renders any value in full depth, e.g. extension data.
func DumpValue(v interface{}) string {
	return spew.Sdump(v)
}

// Trace dumps the node tree of m to the debug trace.
func Trace(m *uistyle.Manager) {
	tracing.With(tracer()).Dump("node tree", Dump(m))
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const nodeTmpl = `{{ if .IsText }}
{{ .Name }}	[ label={{ shortstring .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label="{{ .Label }}\n{{ .Rect }} {{ .Layout }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const propsTmpl = `{{ .Name }}_props [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">properties</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pedgeTmpl = `{{ . }} -> {{ . }}_props [dir=none weight=1 style="dashed"] ;
`
