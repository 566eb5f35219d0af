// Package examples holds the sample programs used to smoke-test the front end.
package examples

type Example struct {
	Name   string
	Source string
}

var All = []Example{
	{
		Name:   "src_1",
		Source: "int main(){}",
	},
	{
		Name: "src_2",
		Source: `
    int main(){
      y=a*x+b;
    }
  `,
	},
	{
		Name: "src_3",
		Source: `
    int main(){
      int y;
      y= a || b;
      y= !(a && b) % 5;
      y= 4 > 2;

    }
  `,
	},
	{
		Name: "src_4",
		Source: `
      int main(){
        int a,ax1;
        bool t[10],z[100];
        a=42;
        if (a!=42){
          t[3]=a*2;
        }
        else{
          while(true){
            x= 123 > 23;
          }
        }
      }
  `,
	},
}

// Lookup returns the example called name.
func Lookup(name string) (Example, bool) {
	for _, ex := range All {
		if ex.Name == name {
			return ex, true
		}
	}

	return Example{}, false
}
