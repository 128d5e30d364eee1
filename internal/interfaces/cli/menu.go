// Package cli implementa el menú interactivo. Es una capa delgada: pide
// datos, los convierte a primitivos, delega en los casos de uso y muestra
// resultados o errores; no contiene lógica de inventario.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-retail/internal/application/dto"
	invuc "github.com/jhoicas/inventario-retail/internal/application/inventory"
	"github.com/jhoicas/inventario-retail/internal/application/report"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
)

// Menu bucle de menú sobre un lector/escritor (stdin/stdout en producción).
type Menu struct {
	in         *bufio.Scanner
	out        io.Writer
	inv        *invuc.UseCase
	rep        *report.UseCase
	reportPath string
}

// New construye el menú.
func New(in io.Reader, out io.Writer, inv *invuc.UseCase, rep *report.UseCase, reportPath string) *Menu {
	return &Menu{
		in:         bufio.NewScanner(in),
		out:        out,
		inv:        inv,
		rep:        rep,
		reportPath: reportPath,
	}
}

// Run ejecuta el bucle hasta que el usuario elige salir o la entrada se
// agota. Los errores de los casos de uso se muestran y el bucle continúa;
// nunca terminan el proceso.
func (m *Menu) Run() {
	for {
		m.printMenu()
		choice, ok := m.readLine("Opción: ")
		if !ok {
			return
		}

		var err error
		switch choice {
		case "1":
			err = m.addProduct()
		case "2":
			err = m.sellProduct()
		case "3":
			err = m.restockProduct()
		case "4":
			err = m.removeProduct()
		case "5":
			m.printProducts(m.inv.ListAll())
		case "6":
			err = m.searchByName()
		case "7":
			err = m.searchByCategory()
		case "8":
			fmt.Fprintf(m.out, "Valor total del inventario: %s\n", m.inv.TotalValue())
		case "9":
			removed := m.inv.RemoveExpired(time.Now())
			fmt.Fprintf(m.out, "Productos vencidos eliminados: %d\n", len(removed))
			for _, id := range removed {
				fmt.Fprintf(m.out, "  - %s\n", id)
			}
		case "10":
			if err = m.inv.Save(); err == nil {
				fmt.Fprintln(m.out, "Inventario guardado.")
			}
		case "11":
			if err = m.inv.Load(); err == nil {
				fmt.Fprintf(m.out, "Inventario cargado (%d productos).\n", m.inv.Count())
			}
		case "12":
			if err = m.rep.Export(m.inv.ListAll(), m.inv.TotalValue(), m.reportPath); err == nil {
				fmt.Fprintf(m.out, "Reporte exportado en %s\n", m.reportPath)
			}
		case "0":
			fmt.Fprintln(m.out, "Hasta luego.")
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida.")
		}

		if err != nil {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, `
--- Menú de Inventario ---
1.  Agregar producto
2.  Vender producto
3.  Reabastecer producto
4.  Eliminar producto
5.  Ver todos los productos
6.  Buscar por nombre
7.  Buscar por categoría
8.  Valor total del inventario
9.  Eliminar productos vencidos
10. Guardar inventario
11. Cargar inventario
12. Exportar reporte PDF
0.  Salir
`)
}

func (m *Menu) addProduct() error {
	fmt.Fprintln(m.out, "Categorías: Electronics, Grocery, Clothing")
	category, ok := m.readLine("Categoría: ")
	if !ok {
		return nil
	}
	id, _ := m.readLine("ID del producto (vacío para generar uno): ")
	name, _ := m.readLine("Nombre: ")
	price, err := m.readDecimal("Precio: ")
	if err != nil {
		return err
	}
	qty, err := m.readInt("Cantidad: ")
	if err != nil {
		return err
	}

	in := dto.CreateProductRequest{
		Category: category,
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: qty,
	}
	switch strings.ToLower(category) {
	case "electronics":
		in.Brand, _ = m.readLine("Marca: ")
		in.WarrantyYears, err = m.readInt("Garantía (años): ")
		if err != nil {
			return err
		}
	case "grocery":
		in.ExpiryDate, _ = m.readLine("Fecha de vencimiento (YYYY-MM-DD): ")
	case "clothing":
		in.Size, _ = m.readLine("Talla: ")
		in.Material, _ = m.readLine("Material: ")
	}

	p, err := m.inv.AddProduct(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Producto agregado: %s\n", p)
	return nil
}

func (m *Menu) sellProduct() error {
	id, ok := m.readLine("ID del producto: ")
	if !ok {
		return nil
	}
	qty, err := m.readInt("Cantidad a vender: ")
	if err != nil {
		return err
	}
	p, err := m.inv.SellProduct(id, qty)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Venta registrada. Stock restante de %s: %d\n", p.ID, p.Quantity)
	return nil
}

func (m *Menu) restockProduct() error {
	id, ok := m.readLine("ID del producto: ")
	if !ok {
		return nil
	}
	qty, err := m.readInt("Cantidad a reabastecer: ")
	if err != nil {
		return err
	}
	p, err := m.inv.RestockProduct(id, qty)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Reabastecimiento registrado. Stock de %s: %d\n", p.ID, p.Quantity)
	return nil
}

func (m *Menu) removeProduct() error {
	id, ok := m.readLine("ID del producto: ")
	if !ok {
		return nil
	}
	if m.inv.RemoveProduct(id) {
		fmt.Fprintln(m.out, "Producto eliminado.")
	} else {
		fmt.Fprintln(m.out, "No existía un producto con ese ID.")
	}
	return nil
}

func (m *Menu) searchByName() error {
	query, ok := m.readLine("Nombre a buscar: ")
	if !ok {
		return nil
	}
	m.printProducts(m.inv.SearchByName(query))
	return nil
}

func (m *Menu) searchByCategory() error {
	tag, ok := m.readLine("Categoría (Electronics/Grocery/Clothing): ")
	if !ok {
		return nil
	}
	m.printProducts(m.inv.SearchByCategory(tag))
	return nil
}

func (m *Menu) printProducts(products []*entity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(m.out, "(sin productos)")
		return
	}
	for _, p := range products {
		fmt.Fprintln(m.out, p)
	}
}

// readLine muestra el prompt y lee una línea recortada. ok=false si la
// entrada se agotó.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) readInt(prompt string) (int, error) {
	s, ok := m.readLine(prompt)
	if !ok {
		return 0, fmt.Errorf("entrada agotada")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q no es un número entero", s)
	}
	return n, nil
}

func (m *Menu) readDecimal(prompt string) (decimal.Decimal, error) {
	s, ok := m.readLine(prompt)
	if !ok {
		return decimal.Zero, fmt.Errorf("entrada agotada")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q no es un número válido", s)
	}
	return d, nil
}
